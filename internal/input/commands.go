package input

import (
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/term"
)

func handleCommands(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	if ev.Name == "escape" || (ev.Ctrl && ev.Name == "c") {
		return dismissOrArmQuit(s)
	}
	if ev.Name == "q" && s.CmdQuery == "" {
		return dismissOrArmQuit(s)
	}

	switch ev.Name {
	case "up":
		out := s.Clone()
		moveCommandCursorInPlace(&out, -1)
		out.QuitConfirm = false
		return out, SignalNone
	case "down":
		out := s.Clone()
		moveCommandCursorInPlace(&out, 1)
		out.QuitConfirm = false
		return out, SignalNone
	case "pageup":
		out := s.Clone()
		for i := 0; i < 10; i++ {
			moveCommandCursorInPlace(&out, -1)
		}
		out.QuitConfirm = false
		return out, SignalNone
	case "pagedown":
		out := s.Clone()
		for i := 0; i < 10; i++ {
			moveCommandCursorInPlace(&out, 1)
		}
		out.QuitConfirm = false
		return out, SignalNone
	case "left":
		out := s.Clone()
		out.CmdQueryCursor = clampInt(out.CmdQueryCursor-1, 0, len([]rune(out.CmdQuery)))
		return out, SignalNone
	case "right":
		out := s.Clone()
		out.CmdQueryCursor = clampInt(out.CmdQueryCursor+1, 0, len([]rune(out.CmdQuery)))
		return out, SignalNone
	case "backspace":
		out := s.Clone()
		out.CmdQuery, out.CmdQueryCursor = backspaceAt(out.CmdQuery, out.CmdQueryCursor)
		recomputeCommandFilter(&out)
		return out, SignalNone
	case "enter":
		return selectCommand(s)
	}

	if r, ok := isPrintable(ev); ok {
		out := s.Clone()
		out.CmdQuery, out.CmdQueryCursor = insertAt(out.CmdQuery, out.CmdQueryCursor, r)
		out.QuitConfirm = false
		recomputeCommandFilter(&out)
		return out, SignalNone
	}

	return s, SignalNone
}

func recomputeCommandFilter(s *formcore.AppState) {
	s.CmdFiltered = formcore.FilterCommands(s.Tools, s.CmdQuery)
	s.CmdCursor = 0
	s.CmdScrollTop = 0
}

// moveCommandCursorInPlace clamps at the ends (§8: "arrow-down on the
// last selectable row stays in place").
func moveCommandCursorInPlace(s *formcore.AppState, delta int) {
	if len(s.CmdFiltered) == 0 {
		return
	}
	s.CmdCursor = clampInt(s.CmdCursor+delta, 0, len(s.CmdFiltered)-1)
}

func dismissOrArmQuit(s formcore.AppState) (formcore.AppState, Signal) {
	out := s.Clone()
	if out.CmdQuery != "" {
		out.CmdQuery = ""
		out.CmdQueryCursor = 0
		recomputeCommandFilter(&out)
		return out, SignalNone
	}
	if out.QuitConfirm {
		return out, SignalExit
	}
	out.QuitConfirm = true
	return out, SignalNone
}

func selectCommand(s formcore.AppState) (formcore.AppState, Signal) {
	if len(s.CmdFiltered) == 0 {
		return s, SignalNone
	}
	tool := s.Tools[s.CmdFiltered[s.CmdCursor]]
	return EnterForm(s, tool)
}

// EnterForm builds the Form (or, for a zero-property tool, Loading)
// state for the selected tool (§4.7's Commands-Enter transition).
func EnterForm(s formcore.AppState, tool mcp.ToolDef) (formcore.AppState, Signal) {
	toolCopy := tool
	fields := schema.ResolveTool(tool)

	out := s.Clone()
	out.SelectedTool = &toolCopy
	out.Fields = fields
	out.Values = formcore.Defaults(fields)
	out.FormStack = nil
	out.FormQuery = ""
	out.FormQueryCursor = 0
	out.FormFiltered = formcore.FilterFormFields(fields, "")
	out.FormListCursor = 0
	out.FormScrollTop = 0
	out.FormShowRequired = false
	out.FormShowOptional = false
	out.Editing = false

	if len(fields) == 0 {
		out.View = formcore.ViewLoading
		out.SpinnerFrame = 0
		out.SpinnerMsgIdx = 0
		return out, SignalSubmit
	}

	out.View = formcore.ViewForm
	if idx := firstUnfilledRequired(fields, out.Values); idx >= 0 {
		out.FormListCursor = idx
		openEditor(&out, idx)
	}
	return out, SignalNone
}

func firstUnfilledRequired(fields []schema.Field, values formcore.FormValues) int {
	unfilled := formcore.RequiredUnfilledIndices(fields, values)
	if len(unfilled) == 0 {
		return -1
	}
	return unfilled[0]
}
