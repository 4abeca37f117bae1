package views

import (
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/layout"
)

// RenderLoading builds the Loading view (§4.6): spinner glyph plus the
// whimsical message the core loop's timer has rotated to.
func RenderLoading(s formcore.AppState, cols, rows int) []string {
	msg := LoadingMessages[s.SpinnerMsgIdx%len(LoadingMessages)]
	frame := SpinnerFrame(s.SpinnerFrame)

	mid := rows / 2
	var content []string
	for i := 0; i < mid-1; i++ {
		content = append(content, "")
	}
	line := "  " + cyanStyle.Render(frame) + "  " + msg + "…"
	content = append(content, centerLine(line, cols))

	return layout.RenderLayout(layout.Frame{Content: content, Footer: "working…"}, cols, rows)
}

func centerLine(s string, cols int) string {
	pad := (cols - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	out := ""
	for i := 0; i < pad; i++ {
		out += " "
	}
	return out + s
}
