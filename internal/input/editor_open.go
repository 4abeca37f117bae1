package input

import (
	"github.com/readwiseio/readwise-cli/internal/dateparts"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

// openEditor mutates s in place to enter edit mode on fieldIdx, seeding
// the kind-specific transient editor state from the current draft
// (§4.7: "opens that field's editor with its kind-specific initial
// state").
func openEditor(s *formcore.AppState, fieldIdx int) {
	f := s.Fields[fieldIdx]
	s.Editing = true
	s.EditFieldIdx = fieldIdx
	draft := s.Values[f.Name]

	switch f.Prop.Kind {
	case schema.KindText, schema.KindNumber:
		s.InputBuf = draft
		s.InputCursorPos = len([]rune(draft))
	case schema.KindBool:
		s.EnumCursor = indexOf(boolChoiceValues, draft)
	case schema.KindEnum:
		s.EnumCursor = indexOf(f.Prop.Choices, draft)
	case schema.KindArrayEnum:
		tags := formcore.DecodeTags(draft)
		selected := make(map[int]bool, len(tags))
		for _, t := range tags {
			if i := indexOf(f.Prop.Choices, t); i >= 0 {
				selected[i] = true
			}
		}
		s.EnumSelected = selected
		s.EnumCursor = -1 // no row highlighted until the first up/down
	case schema.KindArrayText:
		s.EnumCursor = len(formcore.DecodeTags(draft))
		s.InputBuf = ""
		s.InputCursorPos = 0
	case schema.KindDate:
		if parts, ok := dateparts.Parse(draft, f.Prop.DateFormat); ok {
			s.DateParts = parts
		} else {
			s.DateParts = dateparts.Today(f.Prop.DateFormat)
		}
		s.DatePartCursor = 0
	case schema.KindArrayObj:
		s.EnumCursor = 0
	}
}

var boolChoiceValues = []string{"true", "false"}

func indexOf(xs []string, v string) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// closeEditor exits edit mode, resets the palette filter, and
// auto-advances the cursor to the next unfilled required field (or the
// Execute row) — the shared tail of every confirm path (§4.7).
func closeEditor(s *formcore.AppState) {
	s.Editing = false
	s.FormQuery = ""
	s.FormQueryCursor = 0
	s.FormFiltered = formcore.FilterFormFields(s.Fields, "")
	advanceToNextRequired(s)
}

func advanceToNextRequired(s *formcore.AppState) {
	unfilled := formcore.RequiredUnfilledIndices(s.Fields, s.Values)
	for _, idx := range unfilled {
		if idx > s.EditFieldIdx {
			s.FormListCursor = idx
			return
		}
	}
	if len(unfilled) > 0 {
		s.FormListCursor = unfilled[0]
		return
	}
	s.FormListCursor = len(s.FormFiltered) - 1
}
