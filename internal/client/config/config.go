// Package config handles configuration for the client, including defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the storedash client.
//
// Fields:
//   - ServerBaseURL: base URL of the store REST API.
//   - DatabasePath: path to the local SQLite database file.
//   - PageSize: number of products fetched per page.
//   - RequestTimeout: per-request timeout for the HTTP transport.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	PageSize       int
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://dummyjson.com"
	c.DatabasePath = "storedash.db"
	c.PageSize = 10
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
