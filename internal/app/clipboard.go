package app

import (
	"encoding/json"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/readwiseio/readwise-cli/internal/formcore"
)

// copyResult writes the current Results value to the system clipboard
// (supplemented clipboard-copy feature) and returns the status line to
// show the user. It tries the OS clipboard first and falls back to an
// OSC52 terminal escape sequence, which works over SSH where there is
// no local clipboard to reach.
func copyResult(s formcore.AppState) string {
	text := resultText(s)
	if text == "" {
		return "nothing to copy"
	}

	if err := clipboard.WriteAll(text); err == nil {
		return "copied to clipboard"
	}

	if _, err := osc52.New(text).WriteTo(os.Stdout); err != nil {
		return "copy failed: " + err.Error()
	}
	return "copied to clipboard"
}

func resultText(s formcore.AppState) string {
	switch v := s.Result.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		if v == formcore.SuccessSentinel || v == formcore.EmptyListSentinel {
			return ""
		}
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
