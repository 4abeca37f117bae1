package input

import (
	"github.com/readwiseio/readwise-cli/internal/argsconv"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/term"
)

func handleFormPalette(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	switch ev.Name {
	case "escape", "c":
		if ev.Name == "c" && !ev.Ctrl {
			break
		}
		return escapeFromPalette(s), SignalNone
	}

	switch ev.Name {
	case "tab":
		out := s.Clone()
		tabToNextRequired(&out)
		return out, SignalNone
	case "o":
		if s.FormQuery == "" {
			out := s.Clone()
			out.FormShowOptional = !out.FormShowOptional
			return out, SignalNone
		}
	case "up":
		out := s.Clone()
		movePaletteCursor(&out, -1)
		return out, SignalNone
	case "down":
		out := s.Clone()
		movePaletteCursor(&out, 1)
		return out, SignalNone
	case "pageup":
		out := s.Clone()
		for i := 0; i < 10; i++ {
			movePaletteCursor(&out, -1)
		}
		return out, SignalNone
	case "pagedown":
		out := s.Clone()
		for i := 0; i < 10; i++ {
			movePaletteCursor(&out, 1)
		}
		return out, SignalNone
	case "left":
		out := s.Clone()
		out.FormQueryCursor = clampInt(out.FormQueryCursor-1, 0, len([]rune(out.FormQuery)))
		return out, SignalNone
	case "right":
		out := s.Clone()
		out.FormQueryCursor = clampInt(out.FormQueryCursor+1, 0, len([]rune(out.FormQuery)))
		return out, SignalNone
	case "backspace":
		if s.FormQuery == "" {
			return reopenLastSetField(s), SignalNone
		}
		out := s.Clone()
		out.FormQuery, out.FormQueryCursor = backspaceAt(out.FormQuery, out.FormQueryCursor)
		recomputeFormFilter(&out)
		return out, SignalNone
	case "enter":
		return confirmPaletteRow(s)
	}

	if r, ok := isPrintable(ev); ok {
		out := s.Clone()
		out.FormQuery, out.FormQueryCursor = insertAt(out.FormQuery, out.FormQueryCursor, r)
		recomputeFormFilter(&out)
		return out, SignalNone
	}

	return s, SignalNone
}

func recomputeFormFilter(s *formcore.AppState) {
	s.FormFiltered = formcore.FilterFormFields(s.Fields, s.FormQuery)
	s.FormListCursor = 0
}

func movePaletteCursor(s *formcore.AppState, delta int) {
	if len(s.FormFiltered) == 0 {
		return
	}
	s.FormListCursor = clampInt(s.FormListCursor+delta, 0, len(s.FormFiltered)-1)
}

// tabToNextRequired jumps the cursor to the next unfilled required
// field, wrapping; if none remain it jumps to the Execute/Add/Save row
// (§4.7).
func tabToNextRequired(s *formcore.AppState) {
	unfilled := formcore.RequiredUnfilledIndices(s.Fields, s.Values)
	if len(unfilled) == 0 {
		s.FormListCursor = len(s.FormFiltered) - 1
		return
	}

	posOf := make(map[int]int, len(s.FormFiltered))
	for i, idx := range s.FormFiltered {
		posOf[idx] = i
	}
	currentFieldIdx := -1
	if s.FormListCursor < len(s.FormFiltered) {
		currentFieldIdx = s.FormFiltered[s.FormListCursor]
	}
	for _, idx := range unfilled {
		if idx > currentFieldIdx {
			if pos, ok := posOf[idx]; ok {
				s.FormListCursor = pos
				return
			}
		}
	}
	if pos, ok := posOf[unfilled[0]]; ok {
		s.FormListCursor = pos
	}
}

// escapeFromPalette implements §4.7's three-way escape: clear the
// search query, else pop a sub-form without committing, else return to
// the command list.
func escapeFromPalette(s formcore.AppState) formcore.AppState {
	out := s.Clone()
	if out.FormQuery != "" {
		out.FormQuery = ""
		out.FormQueryCursor = 0
		recomputeFormFilter(&out)
		return out
	}
	if len(out.FormStack) > 0 {
		popSubForm(&out)
		return out
	}
	out.View = formcore.ViewCommands
	out.SelectedTool = nil
	out.Fields = nil
	out.Values = nil
	out.FormStack = nil
	return out
}

func popSubForm(s *formcore.AppState) {
	top := s.FormStack[len(s.FormStack)-1]
	s.FormStack = s.FormStack[:len(s.FormStack)-1]
	s.Fields = top.ParentFields
	s.Values = top.ParentValues.Clone()
	s.FormQuery = ""
	s.FormQueryCursor = 0
	s.FormFiltered = formcore.FilterFormFields(s.Fields, "")
	if pos := positionOf(s.FormFiltered, fieldIndexByName(s.Fields, top.FieldName)); pos >= 0 {
		s.FormListCursor = pos
	}
}

func fieldIndexByName(fields []schema.Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func reopenLastSetField(s formcore.AppState) formcore.AppState {
	out := s.Clone()
	for i := len(out.Fields) - 1; i >= 0; i-- {
		if !formcore.IsUnset(out.Fields[i], out.Values[out.Fields[i].Name]) {
			out.FormListCursor = i
			if pos := positionOf(out.FormFiltered, i); pos >= 0 {
				out.FormListCursor = pos
			}
			openEditor(&out, i)
			return out
		}
	}
	return out
}

func positionOf(filtered []int, fieldIdx int) int {
	for i, idx := range filtered {
		if idx == fieldIdx {
			return i
		}
	}
	return -1
}

func confirmPaletteRow(s formcore.AppState) (formcore.AppState, Signal) {
	if s.FormListCursor < 0 || s.FormListCursor >= len(s.FormFiltered) {
		return s, SignalNone
	}
	idx := s.FormFiltered[s.FormListCursor]

	if idx == -1 {
		return confirmExecuteRow(s)
	}

	out := s.Clone()
	openEditor(&out, idx)
	return out, SignalNone
}

func confirmExecuteRow(s formcore.AppState) (formcore.AppState, Signal) {
	if len(s.FormStack) > 0 {
		return commitSubForm(s), SignalNone
	}

	unfilled := formcore.RequiredUnfilledIndices(s.Fields, s.Values)
	if len(unfilled) > 0 {
		out := s.Clone()
		out.FormShowRequired = true
		return out, SignalNone
	}

	out := s.Clone()
	out.View = formcore.ViewLoading
	out.SpinnerFrame = 0
	out.SpinnerMsgIdx = 0
	return out, SignalSubmit
}

// commitSubForm serializes the current sub-form into the parent
// array field and restores the parent (§3 FormStackEntry semantics).
func commitSubForm(s formcore.AppState) formcore.AppState {
	top := s.FormStack[len(s.FormStack)-1]
	item := argsconv.Build(s.Fields, s.Values)

	out := s.Clone()
	out.FormStack = out.FormStack[:len(out.FormStack)-1]
	out.Fields = top.ParentFields
	out.Values = top.ParentValues.Clone()

	items := formcore.DecodeObjects(out.Values[top.FieldName])
	if top.EditIndex >= 0 && top.EditIndex < len(items) {
		items[top.EditIndex] = item
	} else {
		items = append(items, item)
	}
	out.Values[top.FieldName] = formcore.EncodeObjects(items)

	out.FormQuery = ""
	out.FormQueryCursor = 0
	out.FormFiltered = formcore.FilterFormFields(out.Fields, "")
	if pos := positionOf(out.FormFiltered, fieldIndexByName(out.Fields, top.FieldName)); pos >= 0 {
		out.FormListCursor = pos
	}
	return out
}
