package dateparts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_DateOnly(t *testing.T) {
	p, ok := Parse("2024-03-05", FormatDate)
	assert.True(t, ok)
	assert.Equal(t, []int{2024, 3, 5}, p.Values)
	assert.Equal(t, "2024-03-05", p.ToString())
}

func TestParse_DateTimeDefaultsTimeWhenAbsent(t *testing.T) {
	p, ok := Parse("2024-03-05", FormatDateTime)
	assert.True(t, ok)
	assert.Equal(t, []int{2024, 3, 5, 0, 0}, p.Values)
	assert.Equal(t, "2024-03-05T00:00:00Z", p.ToString())
}

func TestParse_DateTimeWithTimePortion(t *testing.T) {
	p, ok := Parse("2024-03-05T14:30:00Z", FormatDateTime)
	assert.True(t, ok)
	assert.Equal(t, []int{2024, 3, 5, 14, 30}, p.Values)
}

func TestParse_RejectsUnparseable(t *testing.T) {
	_, ok := Parse("not a date", FormatDate)
	assert.False(t, ok)
}

func TestAdjust_MonthWrapsAroundYearBoundary(t *testing.T) {
	p := Parts{Values: []int{2024, 12, 15}, Format: FormatDate}
	out := Adjust(p, 1, 1)
	assert.Equal(t, 1, out.Values[1])
}

func TestAdjust_DayClampsToShorterMonth(t *testing.T) {
	p := Parts{Values: []int{2024, 1, 31}, Format: FormatDate}
	out := Adjust(p, 1, 1) // move to February
	assert.Equal(t, 2, out.Values[1])
	assert.Equal(t, 29, out.Values[2]) // 2024 is a leap year
}

func TestAdjust_YearClampsAtBounds(t *testing.T) {
	p := Parts{Values: []int{1900, 1, 1}, Format: FormatDate}
	out := Adjust(p, 0, -5)
	assert.Equal(t, 1900, out.Values[0])
}

func TestDaysInMonth_LeapYearFebruary(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
}
