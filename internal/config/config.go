// Package config holds the ambient configuration the core's external
// collaborators (§6) are built from: catalog endpoint, cache location
// and TTL, and OAuth client settings. None of this is read by the core
// itself — it is assembled once in cmd/readwise and threaded through the
// four interfaces (§1's "factored behind the four interfaces").
package config

import "time"

// Config is the full application configuration, loaded from defaults,
// an optional YAML file, and environment overrides, in that order.
type Config struct {
	// Endpoint is the catalog/tool-invocation service's JSON-RPC-over-HTTP
	// base URL (§1).
	Endpoint string `yaml:"endpoint"`

	// CacheDir is where the catalog cache document (§6) is written.
	CacheDir string `yaml:"cache_dir"`
	// CacheTTL is read from the file and checked by Validate. The catalog
	// cache does not consult it: package catalog always applies its fixed
	// 24h TTL (§6).
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// OAuthClientID is used by the out-of-scope OAuth/PKCE flow (§1) to
	// obtain a token; a pre-issued personal token can be supplied instead
	// via ReadwiseToken, in which case LoadToken returns AuthToken (§6).
	OAuthClientID string `yaml:"oauth_client_id"`
	ReadwiseToken string `yaml:"-"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
	DebugMode      bool          `yaml:"-"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Endpoint:       "https://readwise.io/api/mcp",
		CacheDir:       defaultCacheDir(),
		CacheTTL:       24 * time.Hour,
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
	}
}

// CachePath returns the catalog cache document's path.
func (c *Config) CachePath() string {
	return c.CacheDir + "/catalog.json"
}
