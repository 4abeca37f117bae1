package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWidth_IgnoresEscapeSequences(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth("\x1b[1mhello\x1b[0m"))
	assert.Equal(t, 5, VisibleWidth("hello"))
}

func TestStripANSI_RemovesEscapesOnly(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1mhello\x1b[0m"))
}

func TestFitWidth_PadsShortStrings(t *testing.T) {
	assert.Equal(t, "hi   ", FitWidth("hi", 5))
}

func TestFitWidth_TruncatesLongStrings(t *testing.T) {
	assert.Equal(t, "hel", FitWidth("hello", 3))
}

func TestFitWidth_ResetsStyleAfterTruncation(t *testing.T) {
	out := FitWidth("\x1b[1mhello world\x1b[0m", 5)
	assert.Contains(t, out, sgrReset)
}

func TestAnsiSlice_PreservesEscapesAcrossOffset(t *testing.T) {
	out := AnsiSlice("\x1b[1mhello\x1b[0m", 2)
	assert.Equal(t, "\x1b[1mllo\x1b[0m", out)
}

func TestAnsiSlice_ZeroOffsetIsUnchanged(t *testing.T) {
	assert.Equal(t, "hello", AnsiSlice("hello", 0))
}
