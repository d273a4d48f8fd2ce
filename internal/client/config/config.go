package config

import "time"

// Config holds runtime settings for the folio CLI.
//
// ServerURL is the base URL of the portfolio API. DatabasePath is the SQLite
// file keeping the session token between invocations. RequestTimeout bounds
// each content request.
type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with defaults matching a local development server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3001"
	c.DatabasePath = "folio.db"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
