package formcore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

func TestIsUnset_ArrayObjEmptyJSONCountsAsUnset(t *testing.T) {
	f := schema.Field{Prop: schema.Property{Kind: schema.KindArrayObj}}
	assert.True(t, IsUnset(f, "[]"))
	assert.False(t, IsUnset(f, `[{"text":"hi"}]`))
}

func TestRequiredProgress_CountsOnlyRequiredFields(t *testing.T) {
	fields := []schema.Field{
		{Name: "url", Required: true},
		{Name: "note", Required: false},
	}
	values := FormValues{"url": "https://x", "note": ""}
	filled, total := RequiredProgress(fields, values)
	assert.Equal(t, 1, filled)
	assert.Equal(t, 1, total)
}

func TestFilterCommands_MatchesNameOrDescriptionCaseInsensitive(t *testing.T) {
	tools := []mcp.ToolDef{
		{Name: "reader_create_document", Description: "Save a URL"},
		{Name: "readwise_list_highlights", Description: "List highlights"},
	}
	assert.Equal(t, []int{0}, FilterCommands(tools, "URL"))
	assert.Equal(t, []int{0, 1}, FilterCommands(tools, ""))
	assert.Empty(t, FilterCommands(tools, "nomatch"))
}

func TestGroupTools_BucketsByPrefix(t *testing.T) {
	tools := []mcp.ToolDef{
		{Name: "reader_create_document"},
		{Name: "readwise_list_highlights"},
		{Name: "ping"},
	}
	groups := GroupTools(tools, []int{0, 1, 2})
	assert.Equal(t, []int{0}, groups["Reader"])
	assert.Equal(t, []int{1}, groups["Readwise"])
	assert.Equal(t, []int{2}, groups["Other"])
}

func TestFilterFormFields_AlwaysAppendsExecuteSentinel(t *testing.T) {
	fields := []schema.Field{{Name: "url"}, {Name: "tags"}}
	out := FilterFormFields(fields, "url")
	assert.Equal(t, []int{0, -1}, out)
}

func TestSplitRequiredOptional_PartitionsPreservingOrder(t *testing.T) {
	fields := []schema.Field{
		{Name: "url", Required: true},
		{Name: "tags", Required: false},
		{Name: "note", Required: true},
	}
	required, optional := SplitRequiredOptional(fields, []int{0, 1, 2, -1})
	assert.Equal(t, []int{0, 2}, required)
	assert.Equal(t, []int{1}, optional)
}
