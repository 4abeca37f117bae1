// Package dateparts implements the §4.5 date-part model backing the
// date editor (§4.6): a small year/month/day[/hour/minute] cursor model
// with wrap rules and ISO-8601 parse/serialize.
package dateparts

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
)

// Parts holds [year, month, day] for FormatDate, or
// [year, month, day, hour, minute] for FormatDateTime (§4.5).
type Parts struct {
	Values []int
	Format string
}

// Len returns the number of editable parts for the format.
func Len(format string) int {
	if format == FormatDateTime {
		return 5
	}
	return 3
}

// Today returns the parts for the current host date (§4.5 today(fmt)).
func Today(format string) Parts {
	now := time.Now()
	values := []int{now.Year(), int(now.Month()), now.Day()}
	if format == FormatDateTime {
		values = append(values, now.Hour(), now.Minute())
	}
	return Parts{Values: values, Format: format}
}

var dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
var timeRe = regexp.MustCompile(`T(\d{2}):(\d{2})`)

// Parse matches the date portion (and, for date-time, the optional time
// portion, defaulting to 00:00) of an ISO-ish string (§4.5). It returns
// ok=false if the date portion doesn't match.
func Parse(s, format string) (Parts, bool) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	values := []int{year, month, day}

	if format == FormatDateTime {
		hour, minute := 0, 0
		if tm := timeRe.FindStringSubmatch(s); tm != nil {
			hour, _ = strconv.Atoi(tm[1])
			minute, _ = strconv.Atoi(tm[2])
		}
		values = append(values, hour, minute)
	}
	return Parts{Values: values, Format: format}, true
}

// ToString zero-pads and serializes parts; date-time always forces a
// ":00Z" seconds/UTC suffix (§4.5).
func (p Parts) ToString() string {
	s := fmt.Sprintf("%04d-%02d-%02d", p.Values[0], p.Values[1], p.Values[2])
	if p.Format == FormatDateTime {
		s += fmt.Sprintf("T%02d:%02d:00Z", p.Values[3], p.Values[4])
	}
	return s
}

// DaysInMonth follows the Gregorian leap-year rule (§4.5).
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func wrap(v, min, max int) int {
	span := max - min + 1
	return min + ((v-min)%span+span)%span
}

// Adjust moves the value at cursor by delta, applying the §4.5 wrap
// rules, and re-clamps day to the month's length afterward.
func Adjust(p Parts, cursor, delta int) Parts {
	out := Parts{Values: append([]int(nil), p.Values...), Format: p.Format}
	if cursor < 0 || cursor >= len(out.Values) {
		return out
	}

	switch cursor {
	case 0: // year
		year := out.Values[0] + delta
		if year < 1900 {
			year = 1900
		}
		if year > 2100 {
			year = 2100
		}
		out.Values[0] = year
	case 1: // month
		out.Values[1] = wrap(out.Values[1]+delta, 1, 12)
	case 2: // day
		max := DaysInMonth(out.Values[0], out.Values[1])
		out.Values[2] = wrap(out.Values[2]+delta, 1, max)
	case 3: // hour
		out.Values[3] = wrap(out.Values[3]+delta, 0, 23)
	case 4: // minute
		out.Values[4] = wrap(out.Values[4]+delta, 0, 59)
	}

	maxDay := DaysInMonth(out.Values[0], out.Values[1])
	if out.Values[2] > maxDay {
		out.Values[2] = maxDay
	}
	return out
}
