// Package catalog wraps a live mcp.Catalog with the 24-hour local cache
// §6 describes: "Returns the catalog, possibly from a 24-hour local
// cache keyed by installation." The core never sees this package —
// ListCatalog is still opaque to it — it only wires a *catalog.Cache in
// place of a bare mcp.Service where persistence is wanted.
package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/readwiseio/readwise-cli/internal/debug"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/toolerr"
)

// TTL is the cache validity window from §6.
const TTL = 24 * time.Hour

// document is the §6 on-disk shape: { tools, fetched_at }.
type document struct {
	Tools     []mcp.ToolDef `json:"tools"`
	FetchedAt int64         `json:"fetched_at"`
}

// Cache decorates a live mcp.Catalog with a JSON file cache.
type Cache struct {
	live mcp.Catalog
	path string
	now  func() time.Time
}

// New builds a Cache backed by a single JSON document at path.
func New(live mcp.Catalog, path string) *Cache {
	return &Cache{live: live, path: path, now: time.Now}
}

// ListCatalog satisfies mcp.Catalog: serve a fresh-enough cache entry,
// else fetch live and persist the result. A cache read failure is treated
// as a miss and a write failure is logged; neither fails the call,
// matching §7's "local only" treatment of cache problems.
func (c *Cache) ListCatalog(ctx context.Context) ([]mcp.ToolDef, error) {
	logger := debug.Component("catalog")

	if doc, ok := c.readValid(); ok {
		logger.Debug("serving catalog from cache", debug.F("tools", len(doc.Tools)))
		return doc.Tools, nil
	}

	tools, err := c.live.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.persist(tools); err != nil {
		logger.Warn("failed to persist catalog cache", debug.F("error", toolerr.Cache(err)))
	}
	return tools, nil
}

func (c *Cache) readValid() (document, bool) {
	if c.path == "" {
		return document{}, false
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return document{}, false
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, false
	}
	fetched := time.UnixMilli(doc.FetchedAt)
	if c.now().Sub(fetched) > TTL {
		return document{}, false
	}
	return doc, true
}

func (c *Cache) persist(tools []mcp.ToolDef) error {
	if c.path == "" {
		return nil
	}
	doc := document{Tools: tools, FetchedAt: c.now().UnixMilli()}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}
