// Package input implements the §4.7 per-view key handlers: each view's
// handler consumes a term.KeyEvent and returns a new AppState plus a
// Signal telling the core loop (C8) whether to invoke a tool or exit.
package input

import (
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/term"
)

// Signal tells the core loop what, if anything, to do besides repaint.
type Signal int

const (
	SignalNone Signal = iota
	SignalSubmit
	SignalExit
	// SignalCopyResult asks the core loop to write the current Results
	// value to the system clipboard (§supplemented clipboard-copy
	// feature). The write is a side effect input handlers must not
	// perform themselves, since they stay pure AppState -> AppState.
	SignalCopyResult
)

// Handle dispatches a key event to the handler for s.View (§4.7). The
// Loading view is a no-op: incoming keystrokes are dropped silently so
// the user can't navigate away while a request is pending (§5).
func Handle(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	switch s.View {
	case formcore.ViewForm:
		if s.Editing {
			return handleFormEditor(s, ev)
		}
		return handleFormPalette(s, ev)
	case formcore.ViewLoading:
		return s, SignalNone
	case formcore.ViewResults:
		return handleResults(s, ev)
	default:
		return handleCommands(s, ev)
	}
}

// isPrintable reports whether ev carries a single printable rune that
// should be inserted into a text buffer.
func isPrintable(ev term.KeyEvent) (rune, bool) {
	if ev.Ctrl || ev.Alt {
		return 0, false
	}
	r := []rune(ev.Name)
	if len(r) != 1 {
		return 0, false
	}
	if r[0] < 0x20 {
		return 0, false
	}
	return r[0], true
}

func insertAt(buf string, cursor int, r rune) (string, int) {
	runes := []rune(buf)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:cursor]...)
	out = append(out, r)
	out = append(out, runes[cursor:]...)
	return string(out), cursor + 1
}

func backspaceAt(buf string, cursor int) (string, int) {
	runes := []rune(buf)
	if cursor <= 0 || len(runes) == 0 {
		return buf, cursor
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:cursor-1]...)
	out = append(out, runes[cursor:]...)
	return string(out), cursor - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
