package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readwiseio/readwise-cli/internal/formcore"
)

func TestResultText_StringPassesThrough(t *testing.T) {
	s := formcore.AppState{Result: "plain text"}
	assert.Equal(t, "plain text", resultText(s))
}

func TestResultText_StructuredValueIsPrettyJSON(t *testing.T) {
	s := formcore.AppState{Result: map[string]interface{}{"title": "hi"}}
	assert.JSONEq(t, `{"title":"hi"}`, resultText(s))
}

func TestResultText_SentinelsAreEmpty(t *testing.T) {
	assert.Empty(t, resultText(formcore.AppState{Result: formcore.SuccessSentinel}))
	assert.Empty(t, resultText(formcore.AppState{Result: formcore.EmptyListSentinel}))
	assert.Empty(t, resultText(formcore.AppState{Result: nil}))
}
