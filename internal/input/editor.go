package input

import (
	"strconv"

	"github.com/readwiseio/readwise-cli/internal/dateparts"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/term"
)

func handleFormEditor(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	f := s.Fields[s.EditFieldIdx]
	switch f.Prop.Kind {
	case schema.KindText, schema.KindNumber:
		return handleTextEditor(s, ev)
	case schema.KindBool:
		return handleChoiceEditor(s, ev, boolChoiceValues)
	case schema.KindEnum:
		return handleChoiceEditor(s, ev, f.Prop.Choices)
	case schema.KindArrayEnum:
		return handleArrayEnumEditor(s, ev, f)
	case schema.KindArrayText:
		return handleArrayTextEditor(s, ev)
	case schema.KindDate:
		return handleDateEditor(s, ev, f)
	case schema.KindArrayObj:
		return handleArrayObjEditor(s, ev, f)
	}
	return s, SignalNone
}

func cancelEditor(s formcore.AppState) (formcore.AppState, Signal) {
	out := s.Clone()
	closeEditor(&out)
	return out, SignalNone
}

func handleTextEditor(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	switch ev.Name {
	case "escape":
		return cancelEditor(s)
	case "enter":
		out := s.Clone()
		f := out.Fields[out.EditFieldIdx]
		out.Values[f.Name] = out.InputBuf
		closeEditor(&out)
		return out, SignalNone
	case "left":
		out := s.Clone()
		out.InputCursorPos = clampInt(out.InputCursorPos-1, 0, len([]rune(out.InputBuf)))
		return out, SignalNone
	case "right":
		out := s.Clone()
		out.InputCursorPos = clampInt(out.InputCursorPos+1, 0, len([]rune(out.InputBuf)))
		return out, SignalNone
	case "backspace":
		out := s.Clone()
		out.InputBuf, out.InputCursorPos = backspaceAt(out.InputBuf, out.InputCursorPos)
		return out, SignalNone
	}
	if r, ok := isPrintable(ev); ok {
		out := s.Clone()
		out.InputBuf, out.InputCursorPos = insertAt(out.InputBuf, out.InputCursorPos, r)
		return out, SignalNone
	}
	return s, SignalNone
}

func handleChoiceEditor(s formcore.AppState, ev term.KeyEvent, choices []string) (formcore.AppState, Signal) {
	switch ev.Name {
	case "escape":
		return cancelEditor(s)
	case "up":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor-1, 0, len(choices)-1)
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor+1, 0, len(choices)-1)
		return out, SignalNone
	case "enter":
		out := s.Clone()
		f := out.Fields[out.EditFieldIdx]
		if out.EnumCursor >= 0 && out.EnumCursor < len(choices) {
			out.Values[f.Name] = choices[out.EnumCursor]
		}
		closeEditor(&out)
		return out, SignalNone
	}
	return s, SignalNone
}

// handleArrayEnumEditor: space toggles the highlighted choice; enter
// and escape both confirm, folding in the highlighted choice (if any row
// is highlighted) as selected even if it wasn't explicitly toggled (§4.6).
func handleArrayEnumEditor(s formcore.AppState, ev term.KeyEvent, f schema.Field) (formcore.AppState, Signal) {
	switch ev.Name {
	case "up":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor-1, 0, len(f.Prop.Choices)-1)
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor+1, 0, len(f.Prop.Choices)-1)
		return out, SignalNone
	case " ":
		out := s.Clone()
		out.EnumSelected[out.EnumCursor] = !out.EnumSelected[out.EnumCursor]
		return out, SignalNone
	case "enter", "escape":
		out := s.Clone()
		if out.EnumCursor >= 0 && out.EnumCursor < len(f.Prop.Choices) {
			out.EnumSelected[out.EnumCursor] = true
		}
		var tags []string
		for i, c := range f.Prop.Choices {
			if out.EnumSelected[i] {
				tags = append(tags, c)
			}
		}
		out.Values[f.Name] = formcore.EncodeTags(tags)
		closeEditor(&out)
		return out, SignalNone
	}
	return s, SignalNone
}

// handleArrayTextEditor implements the tag editor: the cursor cycles
// through existing items then the trailing input line (§4.6).
func handleArrayTextEditor(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	f := s.Fields[s.EditFieldIdx]
	items := formcore.DecodeTags(s.Values[f.Name])
	onInput := s.EnumCursor >= len(items)

	switch ev.Name {
	case "up":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor-1, 0, len(items))
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor+1, 0, len(items))
		return out, SignalNone
	case "backspace":
		out := s.Clone()
		if onInput {
			out.InputBuf, out.InputCursorPos = backspaceAt(out.InputBuf, out.InputCursorPos)
			return out, SignalNone
		}
		items = append(append([]string(nil), items[:out.EnumCursor]...), items[out.EnumCursor+1:]...)
		out.Values[f.Name] = formcore.EncodeTags(items)
		out.EnumCursor = clampInt(out.EnumCursor, 0, len(items))
		return out, SignalNone
	case "enter":
		out := s.Clone()
		if onInput {
			if out.InputBuf == "" {
				out.Values[f.Name] = formcore.EncodeTags(items)
				closeEditor(&out)
				return out, SignalNone
			}
			items = append(items, out.InputBuf)
			out.Values[f.Name] = formcore.EncodeTags(items)
			out.InputBuf = ""
			out.InputCursorPos = 0
			out.EnumCursor = len(items)
			return out, SignalNone
		}
		// Re-edit: move the item back into the input.
		editing := items[out.EnumCursor]
		items = append(append([]string(nil), items[:out.EnumCursor]...), items[out.EnumCursor+1:]...)
		out.Values[f.Name] = formcore.EncodeTags(items)
		out.InputBuf = editing
		out.InputCursorPos = len([]rune(editing))
		out.EnumCursor = len(items)
		return out, SignalNone
	case "escape":
		out := s.Clone()
		out.Values[f.Name] = formcore.EncodeTags(items)
		closeEditor(&out)
		return out, SignalNone
	}

	if onInput {
		if r, ok := isPrintable(ev); ok {
			out := s.Clone()
			out.InputBuf, out.InputCursorPos = insertAt(out.InputBuf, out.InputCursorPos, r)
			return out, SignalNone
		}
	}
	return s, SignalNone
}

func handleDateEditor(s formcore.AppState, ev term.KeyEvent, f schema.Field) (formcore.AppState, Signal) {
	n := dateparts.Len(f.Prop.DateFormat)
	switch ev.Name {
	case "left":
		out := s.Clone()
		out.DatePartCursor = clampInt(out.DatePartCursor-1, 0, n-1)
		return out, SignalNone
	case "right":
		out := s.Clone()
		out.DatePartCursor = clampInt(out.DatePartCursor+1, 0, n-1)
		return out, SignalNone
	case "up":
		out := s.Clone()
		out.DateParts = dateparts.Adjust(out.DateParts, out.DatePartCursor, 1)
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.DateParts = dateparts.Adjust(out.DateParts, out.DatePartCursor, -1)
		return out, SignalNone
	case "t":
		out := s.Clone()
		out.DateParts = dateparts.Today(f.Prop.DateFormat)
		return out, SignalNone
	case "backspace":
		out := s.Clone()
		out.Values[f.Name] = ""
		closeEditor(&out)
		return out, SignalNone
	case "enter":
		out := s.Clone()
		out.Values[f.Name] = out.DateParts.ToString()
		closeEditor(&out)
		return out, SignalNone
	case "escape":
		return cancelEditor(s)
	}
	return s, SignalNone
}

func handleArrayObjEditor(s formcore.AppState, ev term.KeyEvent, f schema.Field) (formcore.AppState, Signal) {
	items := formcore.DecodeObjects(s.Values[f.Name])
	switch ev.Name {
	case "up":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor-1, 0, len(items))
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.EnumCursor = clampInt(out.EnumCursor+1, 0, len(items))
		return out, SignalNone
	case "backspace":
		if s.EnumCursor >= len(items) {
			return s, SignalNone
		}
		out := s.Clone()
		items = append(append([]map[string]interface{}(nil), items[:out.EnumCursor]...), items[out.EnumCursor+1:]...)
		out.Values[f.Name] = formcore.EncodeObjects(items)
		out.EnumCursor = clampInt(out.EnumCursor, 0, len(items))
		return out, SignalNone
	case "enter":
		return descendIntoSubForm(s, f, items)
	case "escape":
		return cancelEditor(s)
	}
	return s, SignalNone
}

// descendIntoSubForm pushes the parent form and opens a sub-form over
// an arrayObj field's item schema (§3 FormStackEntry, §4.6).
func descendIntoSubForm(s formcore.AppState, f schema.Field, items []map[string]interface{}) (formcore.AppState, Signal) {
	out := s.Clone()
	editIndex := -1
	var seed map[string]interface{}
	if out.EnumCursor < len(items) {
		editIndex = out.EnumCursor
		seed = items[out.EnumCursor]
	}

	entry := formcore.FormStackEntry{
		ParentFields: out.Fields,
		ParentValues: out.Values,
		FieldName:    f.Name,
		EditIndex:    editIndex,
	}
	out.FormStack = append(out.FormStack, entry)

	out.Fields = f.Prop.Sub
	out.Values = formcore.Defaults(f.Prop.Sub)
	subKinds := make(map[string]schema.Kind, len(f.Prop.Sub))
	for _, sf := range f.Prop.Sub {
		subKinds[sf.Name] = sf.Prop.Kind
	}
	for k, v := range seed {
		out.Values[k] = toDraftString(v, subKinds[k])
	}

	out.Editing = false
	out.FormQuery = ""
	out.FormQueryCursor = 0
	out.FormFiltered = formcore.FilterFormFields(out.Fields, "")
	out.FormListCursor = 0
	out.FormShowRequired = false
	return out, SignalNone
}

// toDraftString encodes a seeded item value back into its string-draft
// form for the sub-form's field list. Arrays need kind to pick the right
// encoding: arrayObj items are full sub-sub-forms (EncodeObjects), while
// arrayText/arrayEnum are tag lists (EncodeTags) — arrays of objects
// containing arrays of objects are legal (§9) and must round-trip here
// rather than silently dropping to "" via the default case.
func toDraftString(v interface{}, kind schema.Kind) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(val)
	case []interface{}:
		if kind == schema.KindArrayObj {
			return formcore.EncodeObjects(toObjectSlice(val))
		}
		return formcore.EncodeTags(toStringSlice(val))
	default:
		return ""
	}
}

func toStringSlice(arr []interface{}) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toObjectSlice(arr []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
