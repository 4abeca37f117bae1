// Package term implements the flicker-free terminal I/O layer (§4.1):
// ANSI-aware string measurement/slicing/truncation, the alternate-screen
// lifecycle, and the keyboard decoder. It is grounded on the same
// ANSI-token-walking technique charmbracelet/x/ansi and mattn/go-runewidth
// use internally, hand-rolled here because the spec requires the core to
// own truncation/slicing precisely rather than delegate to a layout
// engine (§4.2 explicitly replaces any box/flex engine with hand-rolled
// composition).
package term

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// csiPattern matches one CSI escape sequence: ESC [ params letter.
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z]`)

// sgrReset is appended after a truncation that left an SGR sequence
// active, so styling never bleeds into the next painted line.
const sgrReset = "\x1b[0m"

// token is either an escape sequence (Esc != "") or a single rune with
// its display width.
type token struct {
	Esc   string
	R     rune
	Width int
}

func tokenize(s string) []token {
	var toks []token
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			if loc := csiPattern.FindStringIndex(s[i:]); loc != nil && loc[0] == 0 {
				toks = append(toks, token{Esc: s[i : i+loc[1]]})
				i += loc[1]
				continue
			}
			// Unrecognized escape byte; consume just the ESC so we don't
			// loop forever on stray input.
			toks = append(toks, token{Esc: string(rune(0x1b))})
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		toks = append(toks, token{R: r, Width: runewidth.RuneWidth(r)})
		i += size
	}
	return toks
}

// StripANSI removes every CSI escape sequence, leaving plain text.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, t := range tokenize(s) {
		if t.Esc == "" {
			b.WriteRune(t.R)
		}
	}
	return b.String()
}

// VisibleWidth returns s's printable column width, ignoring escapes.
func VisibleWidth(s string) int {
	w := 0
	for _, t := range tokenize(s) {
		if t.Esc == "" {
			w += t.Width
		}
	}
	return w
}

// FitWidth truncates or right-pads s to exactly width printable
// columns (§4.1), preserving escape sequences encountered up to the cut
// and resetting styling if truncation left one active.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	toks := tokenize(s)

	var b strings.Builder
	col := 0
	truncated := false
	sawEsc := false
	for _, t := range toks {
		if t.Esc != "" {
			b.WriteString(t.Esc)
			sawEsc = true
			continue
		}
		if col+t.Width > width {
			truncated = true
			break
		}
		b.WriteRune(t.R)
		col += t.Width
	}

	if truncated && sawEsc {
		b.WriteString(sgrReset)
	}
	for col < width {
		b.WriteByte(' ')
		col++
	}
	return b.String()
}

// AnsiSlice skips the first offset printable columns of s, re-emitting
// (in order) every escape sequence encountered while skipping so styled
// text scrolled horizontally keeps its color (§4.1), then returns the
// remainder of s unchanged.
func AnsiSlice(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	toks := tokenize(s)

	var pending strings.Builder
	col := 0
	i := 0
	for ; i < len(toks); i++ {
		t := toks[i]
		if t.Esc != "" {
			pending.WriteString(t.Esc)
			continue
		}
		if col >= offset {
			break
		}
		col += t.Width
	}

	var b strings.Builder
	b.WriteString(pending.String())
	for ; i < len(toks); i++ {
		t := toks[i]
		if t.Esc != "" {
			b.WriteString(t.Esc)
			continue
		}
		b.WriteRune(t.R)
	}
	return b.String()
}
