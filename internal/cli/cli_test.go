package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

type fakeService struct {
	lastName string
	lastArgs map[string]interface{}
	result   *mcp.CallResult
}

func (f *fakeService) ListCatalog(ctx context.Context) ([]mcp.ToolDef, error) { return nil, nil }

func (f *fakeService) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallResult, error) {
	f.lastName = name
	f.lastArgs = args
	return f.result, nil
}

func (f *fakeService) LoadToken(ctx context.Context) (string, mcp.AuthType, error) {
	return "", mcp.AuthOAuth, nil
}

func TestBuildToolCommand_FlagsBecomeTypedArgs(t *testing.T) {
	fields := []schema.Field{
		{Name: "url", Required: true, Prop: schema.Property{Kind: schema.KindText}},
		{Name: "archive", Prop: schema.Property{Kind: schema.KindBool}},
		{Name: "tags", Prop: schema.Property{Kind: schema.KindArrayText}},
	}
	svc := &fakeService{result: &mcp.CallResult{Content: []mcp.Content{{Type: "text", Text: "ok"}}}}

	cmd := BuildToolCommand(mcp.ToolDef{Name: "reader_create_document"}, fields, svc, time.Second)
	cmd.SetArgs([]string{"--url=https://example.com/a", "--archive", "--tags=a,b"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "reader_create_document", svc.lastName)
	assert.Equal(t, "https://example.com/a", svc.lastArgs["url"])
	assert.Equal(t, true, svc.lastArgs["archive"])
	assert.Equal(t, []string{"a", "b"}, svc.lastArgs["tags"])
	assert.Equal(t, "ok\n", out.String())
}

func TestBuildRootCommand_ListsCatalogTools(t *testing.T) {
	tools := []mcp.ToolDef{
		{Name: "reader_list_documents", Description: "list saved documents"},
	}
	root := BuildRootCommand(tools, &fakeService{}, time.Second)
	root.SetArgs([]string{"list"})
	var out bytes.Buffer
	root.SetOut(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "reader_list_documents")
}
