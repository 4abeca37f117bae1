package views

import "github.com/readwiseio/readwise-cli/internal/formcore"

// Render dispatches to the view renderer for s.View (§4.6).
func Render(s formcore.AppState, cols, rows int) []string {
	switch s.View {
	case formcore.ViewForm:
		return RenderForm(s, cols, rows)
	case formcore.ViewLoading:
		return RenderLoading(s, cols, rows)
	case formcore.ViewResults:
		return RenderResults(s, cols, rows)
	default:
		return RenderCommands(s, cols, rows)
	}
}
