package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/term"
)

func schemaField(t *testing.T) []schema.Field {
	t.Helper()
	return []schema.Field{
		{
			Name:     "category_in",
			Required: false,
			Prop: schema.Property{
				Kind:    schema.KindArrayEnum,
				Choices: []string{"article", "email", "pdf"},
			},
		},
	}
}

func urlOnlyTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name: "reader_create_document",
		InputSchema: mcp.SchemaObject{
			Properties: mcp.OrderedProperties{
				Names:  []string{"url"},
				ByName: map[string]*mcp.SchemaNode{"url": {Type: "string"}},
			},
			Required: []string{"url"},
		},
	}
}

func freshCommandsState(tools []mcp.ToolDef) formcore.AppState {
	return formcore.AppState{
		View:        formcore.ViewCommands,
		Tools:       tools,
		CmdFiltered: formcore.FilterCommands(tools, ""),
	}
}

func typeString(s formcore.AppState, text string) formcore.AppState {
	for _, r := range text {
		s, _ = Handle(s, term.KeyEvent{Name: string(r)})
	}
	return s
}

// Scenario 1 (§8): plain text required field end-to-end.
func TestScenario_PlainTextRequiredField(t *testing.T) {
	tool := urlOnlyTool()
	s := freshCommandsState([]mcp.ToolDef{tool})

	s = typeString(s, "reader_create_document")
	require.Equal(t, 1, len(s.CmdFiltered))

	s, sig := Handle(s, term.KeyEvent{Name: "enter"})
	require.Equal(t, SignalNone, sig)
	require.Equal(t, formcore.ViewForm, s.View)
	require.True(t, s.Editing, "editor should auto-open on the sole required field")
	require.Equal(t, "url", s.Fields[s.EditFieldIdx].Name)

	s = typeString(s, "https://example.com")
	s, sig = Handle(s, term.KeyEvent{Name: "enter"})
	require.Equal(t, SignalNone, sig)
	assert.False(t, s.Editing)
	assert.Equal(t, "https://example.com", s.Values["url"])

	// Cursor should now sit on the Execute row since no other required field remains.
	require.Equal(t, -1, s.FormFiltered[s.FormListCursor])

	s, sig = Handle(s, term.KeyEvent{Name: "enter"})
	assert.Equal(t, SignalSubmit, sig)
	assert.Equal(t, formcore.ViewLoading, s.View)
}

// Scenario 6 (§8): quit confirmation in Commands.
func TestScenario_QuitConfirmation(t *testing.T) {
	s := freshCommandsState([]mcp.ToolDef{urlOnlyTool()})

	s, sig := Handle(s, term.KeyEvent{Name: "q"})
	require.Equal(t, SignalNone, sig)
	require.True(t, s.QuitConfirm)

	s, sig = Handle(s, term.KeyEvent{Name: "q"})
	assert.Equal(t, SignalExit, sig)
}

func TestScenario_QuitConfirmClearsOnOtherKey(t *testing.T) {
	s := freshCommandsState([]mcp.ToolDef{urlOnlyTool()})
	s, _ = Handle(s, term.KeyEvent{Name: "q"})
	require.True(t, s.QuitConfirm)

	s, sig := Handle(s, term.KeyEvent{Name: "down"})
	require.Equal(t, SignalNone, sig)
	assert.False(t, s.QuitConfirm)
}

func TestResults_CopyKeySignalsWithoutMutatingResult(t *testing.T) {
	s := formcore.AppState{View: formcore.ViewResults, Result: map[string]interface{}{"title": "hi"}}

	out, sig := Handle(s, term.KeyEvent{Name: "y"})
	assert.Equal(t, SignalCopyResult, sig)
	assert.Equal(t, s.Result, out.Result)
}

func TestResults_StatusMessageClearsOnOtherKey(t *testing.T) {
	s := formcore.AppState{View: formcore.ViewResults, StatusMessage: "copied to clipboard"}

	out, sig := Handle(s, term.KeyEvent{Name: "down"})
	assert.Equal(t, SignalNone, sig)
	assert.Empty(t, out.StatusMessage)
}

func TestZeroPropertyTool_GoesDirectlyToLoading(t *testing.T) {
	tool := mcp.ToolDef{Name: "ping"}
	s := freshCommandsState([]mcp.ToolDef{tool})

	s, sig := Handle(s, term.KeyEvent{Name: "enter"})
	assert.Equal(t, SignalSubmit, sig)
	assert.Equal(t, formcore.ViewLoading, s.View)
}

func TestCommandCursor_ClampsAtEnds(t *testing.T) {
	tools := []mcp.ToolDef{{Name: "a"}, {Name: "b"}}
	s := freshCommandsState(tools)

	s, _ = Handle(s, term.KeyEvent{Name: "down"})
	s, _ = Handle(s, term.KeyEvent{Name: "down"})
	assert.Equal(t, 1, s.CmdCursor)

	s, _ = Handle(s, term.KeyEvent{Name: "up"})
	s, _ = Handle(s, term.KeyEvent{Name: "up"})
	assert.Equal(t, 0, s.CmdCursor)
}

func TestArrayEnumEditor_MultiSelect(t *testing.T) {
	fields := schemaField(t)
	s := formcore.AppState{
		View:         formcore.ViewForm,
		SelectedTool: &mcp.ToolDef{Name: "reader_search_documents"},
		Fields:       fields,
		Values:       formcore.Defaults(fields),
		FormFiltered: formcore.FilterFormFields(fields, ""),
	}

	s, _ = Handle(s, term.KeyEvent{Name: "enter"}) // open category_in editor
	require.True(t, s.Editing)

	s, _ = Handle(s, term.KeyEvent{Name: "down"})
	s, _ = Handle(s, term.KeyEvent{Name: " "})
	s, _ = Handle(s, term.KeyEvent{Name: "down"})
	s, _ = Handle(s, term.KeyEvent{Name: " "})
	s, _ = Handle(s, term.KeyEvent{Name: "enter"})

	assert.Equal(t, "article, email", s.Values["category_in"])
}
