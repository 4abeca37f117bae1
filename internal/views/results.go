package views

import (
	"fmt"

	"github.com/readwiseio/readwise-cli/internal/cli"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/jsonview"
	"github.com/readwiseio/readwise-cli/internal/layout"
	"github.com/readwiseio/readwise-cli/internal/term"
)

const (
	glyphOKBig    = "✓"
	glyphGhostBig = "◌"
	binaryName    = "readwise"
)

// echoLine renders the §4.9 CLI-echo footer addendum for a successful
// call: the non-interactive invocation equivalent to the form just
// submitted, so the session can be promoted to a reusable script line.
func echoLine(s formcore.AppState) string {
	if s.SelectedTool == nil {
		return ""
	}
	return dimStyle.Render(cli.EchoInvocation(binaryName, s.SelectedTool.Name, s.Fields, s.Values))
}

// RenderResults builds the Results view's three modes (§4.6).
func RenderResults(s formcore.AppState, cols, rows int) []string {
	if s.ResultErr != nil {
		return renderResultLines(s, cols, rows, []string{redStyle.Render(s.ResultErr.Render())})
	}

	if s.Result == formcore.SuccessSentinel {
		var content []string
		mid := rows/2 - 1
		for i := 0; i < mid; i++ {
			content = append(content, "")
		}
		content = append(content, centerLine(greenStyle.Render(glyphOKBig), cols))
		content = append(content, centerLine("Done", cols))
		if echo := echoLine(s); echo != "" {
			content = append(content, "", centerLine(echo, cols))
		}
		if s.StatusMessage != "" {
			content = append(content, "", centerLine(dimStyle.Render(s.StatusMessage), cols))
		}
		return layout.RenderLayout(layout.Frame{Content: content, Footer: "y copy · esc back"}, cols, rows)
	}

	if s.Result == formcore.EmptyListSentinel || jsonview.IsEmptyListResult(s.Result) {
		var content []string
		mid := rows/2 - 2
		for i := 0; i < mid; i++ {
			content = append(content, "")
		}
		content = append(content, centerLine(dimStyle.Render(glyphGhostBig), cols))
		content = append(content, centerLine("No results found", cols))
		return layout.RenderLayout(layout.Frame{Content: content, Footer: "esc back"}, cols, rows)
	}

	lines := jsonview.Render(s.Result)
	if len(lines) == 0 {
		var content []string
		mid := rows/2 - 1
		for i := 0; i < mid; i++ {
			content = append(content, "")
		}
		content = append(content, centerLine(greenStyle.Render(glyphOKBig), cols))
		content = append(content, centerLine("Done", cols))
		return layout.RenderLayout(layout.Frame{Content: content, Footer: "esc back"}, cols, rows)
	}

	return renderResultLines(s, cols, rows, lines)
}

func renderResultLines(s formcore.AppState, cols, rows int, lines []string) []string {
	budget := rows - 5
	if budget < 1 {
		budget = 1
	}

	scroll := s.ResultScroll
	if scroll > len(lines)-budget {
		scroll = len(lines) - budget
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + budget
	if end > len(lines) {
		end = len(lines)
	}

	header := fmt.Sprintf("(%d–%d of %d)", scroll+1, end, len(lines))
	content := []string{dimStyle.Render(header), ""}
	for _, l := range lines[scroll:end] {
		content = append(content, term.AnsiSlice(l, s.ResultScrollX))
	}
	if s.ResultErr == nil {
		if echo := echoLine(s); echo != "" {
			content = append(content, "", echo)
		}
	}
	if s.StatusMessage != "" {
		content = append(content, "", dimStyle.Render(s.StatusMessage))
	}

	return layout.RenderLayout(layout.Frame{Content: content, Footer: "↑↓←→ scroll · y copy · esc back"}, cols, rows)
}
