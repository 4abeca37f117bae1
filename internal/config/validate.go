package config

import (
	"fmt"
	"net/url"
)

// Validate checks that the configuration is usable before the core
// starts; failures here are process-bootstrap errors (§6 exit code 1),
// never surfaced through the core's own Results-view error path.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("config: endpoint must not be empty")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: endpoint %q is not a valid URL", c.Endpoint)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: cache_ttl must not be negative")
	}
	return nil
}
