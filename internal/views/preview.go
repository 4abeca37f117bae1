package views

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readwiseio/readwise-cli/internal/term"
)

// valuePreview implements §4.6's "Value preview" rule for a field row.
func valuePreview(draft string, width int) string {
	if draft == "" {
		return dimStyle.Render("–")
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(draft), &arr); err == nil {
		return fmt.Sprintf("[%d item(s)]", len(arr))
	}

	if lines := strings.Split(draft, "\n"); len(lines) > 1 {
		first := term.FitWidth(lines[0], width)
		return strings.TrimRight(first, " ") + fmt.Sprintf(" [+%d lines]", len(lines)-1)
	}

	if term.VisibleWidth(draft) <= width {
		return draft
	}
	if width <= 1 {
		return "…"
	}
	return term.FitWidth(draft, width-1) + "…"
}
