package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/mcp"
)

type fakeCatalog struct {
	calls int
	tools []mcp.ToolDef
}

func (f *fakeCatalog) ListCatalog(ctx context.Context) ([]mcp.ToolDef, error) {
	f.calls++
	return f.tools, nil
}

func TestCache_FirstCallFetchesLiveAndPersists(t *testing.T) {
	live := &fakeCatalog{tools: []mcp.ToolDef{{Name: "ping"}}}
	path := filepath.Join(t.TempDir(), "catalog.json")
	c := New(live, path)

	tools, err := c.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, live.tools, tools)
	assert.Equal(t, 1, live.calls)
}

func TestCache_SecondCallWithinTTLServesFromCache(t *testing.T) {
	live := &fakeCatalog{tools: []mcp.ToolDef{{Name: "ping"}}}
	path := filepath.Join(t.TempDir(), "catalog.json")
	c := New(live, path)

	_, err := c.ListCatalog(context.Background())
	require.NoError(t, err)

	_, err = c.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, live.calls, "second call should be served from cache, not refetched")
}

func TestCache_ExpiredEntryRefetchesLive(t *testing.T) {
	live := &fakeCatalog{tools: []mcp.ToolDef{{Name: "ping"}}}
	path := filepath.Join(t.TempDir(), "catalog.json")
	c := New(live, path)
	c.now = func() time.Time { return time.Now().Add(-2 * TTL) }

	_, err := c.ListCatalog(context.Background())
	require.NoError(t, err)

	c.now = time.Now
	_, err = c.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, live.calls)
}

func TestCache_EmptyPathNeverPersists(t *testing.T) {
	live := &fakeCatalog{tools: []mcp.ToolDef{{Name: "ping"}}}
	c := New(live, "")

	_, err := c.ListCatalog(context.Background())
	require.NoError(t, err)
	_, err = c.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, live.calls, "with no cache path every call must hit live")
}
