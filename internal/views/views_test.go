package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/dateparts"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/term"
)

func sampleTools() []mcp.ToolDef {
	return []mcp.ToolDef{
		{Name: "reader_create_document", Description: "Save a URL to Reader"},
		{Name: "readwise_list_highlights", Description: "List highlights"},
		{Name: "misc_ping", Description: "Health check"},
	}
}

func TestRenderCommands_LineBudget(t *testing.T) {
	tools := sampleTools()
	s := formcore.AppState{
		View:        formcore.ViewCommands,
		Tools:       tools,
		CmdFiltered: []int{0, 1, 2},
	}

	lines := Render(s, 80, 24)
	require.Len(t, lines, 24)
	for _, l := range lines {
		assert.LessOrEqual(t, term.VisibleWidth(l), 80)
	}
}

func TestRenderCommands_NarrowTerminal(t *testing.T) {
	s := formcore.AppState{View: formcore.ViewCommands, Tools: sampleTools(), CmdFiltered: []int{0, 1, 2}}
	lines := Render(s, 1, 1)
	require.Len(t, lines, 1)
}

func TestRenderForm_Palette(t *testing.T) {
	tool := mcp.ToolDef{Name: "reader_create_document", Description: "Save a URL"}
	fields := []schema.Field{
		{Name: "url", Required: true, Prop: schema.Property{Kind: schema.KindText}},
		{Name: "tags", Required: false, Prop: schema.Property{Kind: schema.KindArrayText}},
	}
	s := formcore.AppState{
		View:         formcore.ViewForm,
		SelectedTool: &tool,
		Fields:       fields,
		Values:       formcore.Defaults(fields),
		FormFiltered: formcore.FilterFormFields(fields, ""),
	}

	lines := Render(s, 80, 24)
	require.Len(t, lines, 24)
}

func TestRenderForm_DateEditor(t *testing.T) {
	tool := mcp.ToolDef{Name: "reader_search"}
	fields := []schema.Field{{Name: "published_date_gt", Required: false, Prop: schema.Property{Kind: schema.KindDate, DateFormat: dateparts.FormatDate}}}
	s := formcore.AppState{
		View:         formcore.ViewForm,
		SelectedTool: &tool,
		Fields:       fields,
		Values:       formcore.Defaults(fields),
		Editing:      true,
		EditFieldIdx: 0,
		DateParts:    dateparts.Today(dateparts.FormatDate),
	}

	lines := Render(s, 80, 24)
	require.Len(t, lines, 24)
}

func TestRenderResults_EmptyList(t *testing.T) {
	s := formcore.AppState{View: formcore.ViewResults, Result: formcore.EmptyListSentinel}
	lines := Render(s, 80, 24)
	require.Len(t, lines, 24)
}

func TestRenderLoading(t *testing.T) {
	s := formcore.AppState{View: formcore.ViewLoading, SpinnerFrame: 3, SpinnerMsgIdx: 1}
	lines := Render(s, 80, 24)
	require.Len(t, lines, 24)
}
