package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".readwise-cache"
	}
	return dir + "/readwise-cli"
}

// Load starts from Default(), merges a YAML file at path if it exists,
// then applies environment overrides. A missing file is not an error —
// defaults apply — but a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("READWISE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("READWISE_TOKEN"); v != "" {
		cfg.ReadwiseToken = v
	}
	if v := os.Getenv("READWISE_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("READWISE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
