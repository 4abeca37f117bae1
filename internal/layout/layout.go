// Package layout implements the single-column composition primitives of
// §4.2: a bordered box frame and greedy word wrap. It deliberately does
// not grow into a flex/grid layout engine — §1's Non-goals rule that
// out — so it stays two small pure functions rather than adopting
// lipgloss's box model, which the teacher uses elsewhere only for SGR
// color tokens (see DESIGN.md).
package layout

import (
	"strings"

	"github.com/readwiseio/readwise-cli/internal/term"
)

// Frame is the input to RenderLayout (§4.2).
type Frame struct {
	Breadcrumb string
	Content    []string
	Footer     string
}

// RenderLayout produces exactly rows output lines: one header row with
// the breadcrumb, one top border, rows-4 content rows, one bottom
// border, one footer row (§4.2).
func RenderLayout(f Frame, cols, rows int) []string {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	inner := cols - 5
	if inner < 0 {
		inner = 0
	}
	fill := cols - 3
	if fill < 0 {
		fill = 0
	}

	lines := make([]string, 0, rows)
	lines = append(lines, term.FitWidth(f.Breadcrumb, cols))

	if rows == 1 {
		return lines
	}

	lines = append(lines, "╭"+strings.Repeat("─", fill)+"╮")
	if len(lines) >= rows {
		return lines[:rows]
	}

	contentRows := rows - 4
	if contentRows < 0 {
		contentRows = 0
	}
	for i := 0; i < contentRows; i++ {
		var text string
		if i < len(f.Content) {
			text = f.Content[i]
		}
		lines = append(lines, "│ "+term.FitWidth(text, inner)+" │")
		if len(lines) >= rows {
			return lines[:rows]
		}
	}

	lines = append(lines, "╰"+strings.Repeat("─", fill)+"╯")
	if len(lines) >= rows {
		return lines[:rows]
	}

	lines = append(lines, term.FitWidth(f.Footer, cols))
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}

// WrapText performs greedy word wrap at width columns, collapsing runs
// of whitespace. It never returns zero lines (§4.2) — an empty or
// all-whitespace input wraps to one empty line.
func WrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []string{""}
	}

	var lines []string
	cur := fields[0]
	for _, word := range fields[1:] {
		if term.VisibleWidth(cur)+1+term.VisibleWidth(word) <= width {
			cur += " " + word
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	lines = append(lines, cur)
	return lines
}
