package views

import (
	"fmt"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/layout"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/term"
)

// AppVersion is stamped into the logo header.
var AppVersion = "dev"

const logoSmall = "readwise"

// cmdRow is one renderable row of the Commands list: either a dim group
// separator or a selectable tool entry.
type cmdRow struct {
	isGroup bool
	label   string
	tool    mcp.ToolDef
	pos     int // index into CmdFiltered, meaningful when !isGroup
}

// buildCommandRows groups filtered tool indices by §4.6 prefix, in
// GroupOrder, each row carrying its position within CmdFiltered so the
// cursor (which indexes CmdFiltered) can be matched against rows.
func buildCommandRows(s formcore.AppState) []cmdRow {
	groups := formcore.GroupTools(s.Tools, s.CmdFiltered)
	posOf := make(map[int]int, len(s.CmdFiltered))
	for i, idx := range s.CmdFiltered {
		posOf[idx] = i
	}

	var rows []cmdRow
	for _, g := range formcore.GroupOrder {
		members := groups[g]
		if len(members) == 0 {
			continue
		}
		rows = append(rows, cmdRow{isGroup: true, label: g})
		for _, toolIdx := range members {
			rows = append(rows, cmdRow{tool: s.Tools[toolIdx], pos: posOf[toolIdx]})
		}
	}
	return rows
}

// RenderCommands builds the Commands view (§4.6).
func RenderCommands(s formcore.AppState, cols, rows int) []string {
	var content []string
	content = append(content, "  "+boldStyle.Render(logoSmall)+dimStyle.Render(" "+AppVersion))
	if s.ConnectionInfo != "" {
		content = append(content, "  "+dimStyle.Render(s.ConnectionInfo))
	}
	content = append(content, "")
	content = append(content, searchLine("Search tools…", s.CmdQuery, s.CmdQueryCursor))
	content = append(content, "")

	allRows := buildCommandRows(s)
	if len(allRows) == 0 {
		content = append(content, dimStyle.Render("  No matching tools"))
	}

	budget := rows - 4 - len(content)
	if budget < 0 {
		budget = 0
	}

	// Find the row corresponding to the selected CmdFiltered position so
	// the visible window always includes the cursor.
	cursorRow := 0
	for i, r := range allRows {
		if !r.isGroup && r.pos == s.CmdCursor {
			cursorRow = i
			break
		}
	}
	start := clampScroll(cursorRow, len(allRows), budget)

	end := start + budget
	if end > len(allRows) {
		end = len(allRows)
	}
	visible := allRows[start:end]
	hidden := len(allRows) - end

	for _, r := range visible {
		if r.isGroup {
			content = append(content, dimStyle.Render("── "+r.label+" ──"))
			continue
		}
		content = append(content, formatCommandRow(r.tool, r.pos == s.CmdCursor, cols))
	}
	if hidden > 0 {
		content = append(content, dimStyle.Render(fmt.Sprintf("  (%d more)", hidden)))
	}

	footer := "↑↓ navigate · enter select · esc quit"
	if s.QuitConfirm {
		footer = "Press again to quit"
	}

	return layout.RenderLayout(layout.Frame{Content: content, Footer: footer}, cols, rows)
}

// clampScroll keeps cursorRow within [start, start+budget) while never
// scrolling past the end of the list, matching the §4.7 "clamped
// scrolling" requirement.
func clampScroll(cursorRow, total, budget int) int {
	if budget <= 0 || total <= budget {
		return 0
	}
	start := 0
	if cursorRow >= budget {
		start = cursorRow - budget + 1
	}
	if start+budget > total {
		start = total - budget
	}
	if start < 0 {
		start = 0
	}
	return start
}

func formatCommandRow(tool mcp.ToolDef, selected bool, cols int) string {
	prefix := "  "
	name := tool.Name
	if selected {
		prefix = glyphCursor
		name = selectedStyle.Render(name)
	}
	line := prefix + name
	descWidth := cols - term.VisibleWidth(line) - 2
	if descWidth > 4 && tool.Description != "" {
		line += "  " + dimStyle.Render(term.FitWidth(tool.Description, descWidth))
	}
	return line
}

func searchLine(placeholder, query string, cursor int) string {
	if query == "" {
		return "  " + dimStyle.Render(placeholder)
	}
	before := query[:cursor]
	after := query[cursor:]
	return "  " + before + boldStyle.Render("│") + after
}
