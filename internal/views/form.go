package views

import (
	"fmt"
	"strings"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/layout"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

// searchThreshold is the field count above which the palette always
// shows its search input (§4.6: "shown when the field count exceeds a
// threshold or the user has typed").
const searchThreshold = 8

// RenderForm builds the Form view, dispatching to the palette or the
// field-kind-specific editor (§4.6).
func RenderForm(s formcore.AppState, cols, rows int) []string {
	if s.Editing {
		return renderFormEditor(s, cols, rows)
	}
	return renderFormPalette(s, cols, rows)
}

func breadcrumb(s formcore.AppState) string {
	parts := []string{s.SelectedTool.Name}
	for _, e := range s.FormStack {
		if e.EditIndex < 0 {
			parts = append(parts, e.FieldName+"[new]")
		} else {
			parts = append(parts, fmt.Sprintf("%s[%d]", e.FieldName, e.EditIndex))
		}
	}
	return strings.Join(parts, " ▸ ")
}

func actionLabel(s formcore.AppState) string {
	if len(s.FormStack) == 0 {
		return "Execute"
	}
	top := s.FormStack[len(s.FormStack)-1]
	if top.EditIndex < 0 {
		return "Add"
	}
	return "Save"
}

func renderFormPalette(s formcore.AppState, cols, rows int) []string {
	var content []string
	content = append(content, boldStyle.Render(s.SelectedTool.Name))
	if s.SelectedTool.Description != "" {
		content = append(content, dimStyle.Render(s.SelectedTool.Description))
	}

	filled, total := formcore.RequiredProgress(s.Fields, s.Values)
	progress := fmt.Sprintf("%d of %d required", filled, total)
	if total > 0 && filled == total {
		progress = greenStyle.Render(progress + " " + glyphOK)
	} else if s.FormShowRequired {
		progress = redStyle.Render(progress)
	} else {
		progress = dimStyle.Render(progress)
	}
	content = append(content, progress, "")

	showSearch := len(s.Fields) > searchThreshold || s.FormQuery != ""
	if showSearch {
		content = append(content, searchLine("Filter fields…", s.FormQuery, s.FormQueryCursor), "")
	}

	required, optional := formcore.SplitRequiredOptional(s.Fields, s.FormFiltered)

	for _, idx := range required {
		content = append(content, formatFieldRow(s, idx, cols))
	}

	if len(optional) > 0 {
		if s.FormShowOptional || s.FormQuery != "" {
			content = append(content, dimStyle.Render(fmt.Sprintf("── %d optional · 'o' to hide ──", len(optional))))
			for _, idx := range optional {
				content = append(content, formatFieldRow(s, idx, cols))
			}
		} else {
			setCount := 0
			for _, idx := range optional {
				if !formcore.IsUnset(s.Fields[idx], s.Values[s.Fields[idx].Name]) {
					setCount++
				}
			}
			content = append(content, dimStyle.Render(fmt.Sprintf("── %d optional (%d set) · 'o' to show ──", len(optional), setCount)))
		}
	}

	content = append(content, "")
	actionSelected := s.FormListCursor < len(s.FormFiltered) && s.FormFiltered[s.FormListCursor] == -1
	actionPrefix := "  "
	label := actionLabel(s)
	if actionSelected {
		actionPrefix = glyphCursor
		label = selectedStyle.Render(label)
	}
	content = append(content, actionPrefix+label)

	if highlighted, ok := currentField(s); ok {
		content = append(content, "")
		if highlighted.Prop.Description != "" {
			content = append(content, dimStyle.Render(highlighted.Prop.Description))
		}
		if len(highlighted.Prop.Examples) > 0 {
			content = append(content, dimStyle.Render(fmt.Sprintf("e.g. %v", highlighted.Prop.Examples[0])))
		}
	}

	footer := "enter edit · tab next required · o optional · esc back"
	return layout.RenderLayout(layout.Frame{Breadcrumb: breadcrumb(s), Content: content, Footer: footer}, cols, rows)
}

func currentField(s formcore.AppState) (schema.Field, bool) {
	if s.FormListCursor < 0 || s.FormListCursor >= len(s.FormFiltered) {
		return schema.Field{}, false
	}
	idx := s.FormFiltered[s.FormListCursor]
	if idx < 0 || idx >= len(s.Fields) {
		return schema.Field{}, false
	}
	return s.Fields[idx], true
}

func formatFieldRow(s formcore.AppState, idx int, cols int) string {
	f := s.Fields[idx]
	selected := s.FormListCursor < len(s.FormFiltered) && s.FormFiltered[s.FormListCursor] == idx

	prefix := "  "
	if selected {
		prefix = glyphCursor
	}

	name := f.Name
	unset := formcore.IsUnset(f, s.Values[f.Name])
	switch {
	case f.Required && unset:
		name = redStyle.Render(fmt.Sprintf("%-20s %s", f.Name, glyphUnset))
	case !unset:
		name = greenStyle.Render(fmt.Sprintf("%-20s", f.Name))
	default:
		name = fmt.Sprintf("%-20s", f.Name)
	}

	badge := dimStyle.Render(f.Prop.Kind.String())
	line := prefix + name
	remaining := cols - 30 - len(badge)
	if remaining < 8 {
		remaining = 8
	}
	line += "  " + valuePreview(s.Values[f.Name], remaining) + "  " + badge
	return line
}
