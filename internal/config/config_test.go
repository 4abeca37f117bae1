package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.NotEmpty(t, cfg.Endpoint)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Endpoint, cfg.Endpoint)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: https://example.test/mcp\ncache_ttl: 1h\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/mcp", cfg.Endpoint)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: https://file.test/mcp\n"), 0o600))

	t.Setenv("READWISE_ENDPOINT", "https://env.test/mcp")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.test/mcp", cfg.Endpoint)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty endpoint", Config{}, true},
		{"not a url", Config{Endpoint: "not a url"}, true},
		{"negative ttl", Config{Endpoint: "https://x.test", CacheTTL: -1}, true},
		{"valid", Config{Endpoint: "https://x.test"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
