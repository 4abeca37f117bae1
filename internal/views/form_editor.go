package views

import (
	"fmt"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/layout"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

func renderFormEditor(s formcore.AppState, cols, rows int) []string {
	f := s.Fields[s.EditFieldIdx]
	var content []string
	content = append(content, boldStyle.Render(f.Name))
	if f.Prop.Description != "" {
		content = append(content, dimStyle.Render(f.Prop.Description))
	}
	content = append(content, "")

	var footer string
	switch f.Prop.Kind {
	case schema.KindText, schema.KindNumber:
		content = append(content, textInputLine(s, f))
		footer = "enter confirm · esc cancel"
	case schema.KindBool:
		content = append(content, choiceList(boolChoices, s.EnumCursor, nil, false)...)
		footer = "↑↓ choose · enter confirm · esc cancel"
	case schema.KindEnum:
		content = append(content, choiceList(f.Prop.Choices, s.EnumCursor, nil, false)...)
		footer = "↑↓ choose · enter confirm · esc cancel"
	case schema.KindArrayEnum:
		content = append(content, choiceList(f.Prop.Choices, s.EnumCursor, s.EnumSelected, true)...)
		footer = "↑↓ move · space toggle · enter/esc confirm"
	case schema.KindArrayText:
		content = append(content, arrayTextEditor(s)...)
		footer = "enter add/confirm · backspace remove · esc confirm"
	case schema.KindDate:
		content = append(content, dateEditor(s)...)
		footer = "←→ part · ↑↓ adjust · t today · enter confirm"
	case schema.KindArrayObj:
		content = append(content, arrayObjEditor(s, f)...)
		footer = "enter open/add · backspace delete · esc confirm"
	}

	return layout.RenderLayout(layout.Frame{Breadcrumb: breadcrumb(s), Content: content, Footer: footer}, cols, rows)
}

var boolChoices = []string{"true", "false"}

func textInputLine(s formcore.AppState, f schema.Field) string {
	buf := s.InputBuf
	if buf == "" {
		placeholder := placeholderFor(f)
		return "  " + dimStyle.Render(placeholder)
	}
	pos := s.InputCursorPos
	if pos > len(buf) {
		pos = len(buf)
	}
	return "  " + buf[:pos] + boldStyle.Render("│") + buf[pos:]
}

func placeholderFor(f schema.Field) string {
	if len(f.Prop.Examples) > 0 {
		return fmt.Sprintf("%v", f.Prop.Examples[0])
	}
	if f.Prop.Description != "" {
		return f.Prop.Description
	}
	if f.Prop.Kind == schema.KindNumber {
		return "0"
	}
	return "type here…"
}

func choiceList(choices []string, cursor int, selected map[int]bool, toggled bool) []string {
	var lines []string
	for i, c := range choices {
		prefix := "  "
		label := c
		if i == cursor {
			prefix = glyphCursor
			label = selectedStyle.Render(c)
		}
		if toggled {
			mark := "[ ]"
			if selected[i] {
				mark = greenStyle.Render("[x]")
			}
			lines = append(lines, prefix+mark+" "+label)
		} else {
			lines = append(lines, prefix+label)
		}
	}
	return lines
}

func arrayTextEditor(s formcore.AppState) []string {
	f := s.Fields[s.EditFieldIdx]
	items := formcore.DecodeTags(s.Values[f.Name])
	var lines []string
	cursor := s.EnumCursor
	for i, item := range items {
		prefix := "  "
		if i == cursor {
			prefix = glyphCursor
		}
		lines = append(lines, prefix+item)
	}
	inputPrefix := "  "
	if cursor == len(items) {
		inputPrefix = glyphCursor
	}
	input := s.InputBuf
	if input == "" {
		input = dimStyle.Render("add item…")
	}
	lines = append(lines, inputPrefix+"> "+input)
	return lines
}

func dateEditor(s formcore.AppState) []string {
	p := s.DateParts
	labels := []string{"YYYY", "MM", "DD", "hh", "mm"}
	var parts []string
	for i, v := range p.Values {
		text := fmt.Sprintf("%0*d", widthFor(labels[i]), v)
		if i == s.DatePartCursor {
			text = selectedStyle.Render(text)
		}
		parts = append(parts, text)
	}
	sep := "-"
	line := "  " + parts[0] + sep + parts[1] + sep + parts[2]
	if len(parts) > 3 {
		line += " " + parts[3] + ":" + parts[4]
	}
	return []string{line}
}

func widthFor(label string) int {
	switch label {
	case "YYYY":
		return 4
	default:
		return 2
	}
}

func arrayObjEditor(s formcore.AppState, f schema.Field) []string {
	items := formcore.DecodeObjects(s.Values[f.Name])
	var lines []string
	cursor := s.EnumCursor
	for i, item := range items {
		prefix := "  "
		if i == cursor {
			prefix = glyphCursor
		}
		lines = append(lines, prefix+summarizeItem(item))
	}
	addPrefix := "  "
	if cursor == len(items) {
		addPrefix = glyphCursor
	}
	lines = append(lines, addPrefix+dimStyle.Render("Add new item"))
	return lines
}

func summarizeItem(item map[string]interface{}) string {
	if len(item) == 0 {
		return dimStyle.Render("(empty)")
	}
	var parts []string
	for k, v := range item {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
