// Package config holds runtime settings for the Findra CLI.
//
// Sources are overlaid in order, later ones winning:
// defaults -> .env / environment -> JSON file (-c/-config) -> flags.
package config

import "time"

type Config struct {
	// BaseURL is the API root, e.g. "https://api.findra.app".
	BaseURL string

	// SessionDBPath is the sqlite file holding the persisted tokens.
	SessionDBPath string

	// PollInterval is the tick for asynchronous job status polling.
	PollInterval time.Duration

	// RequestTimeout bounds each HTTP round trip.
	RequestTimeout time.Duration

	// LogLevel is a slog level name: debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.SessionDBPath = "findra-session.db"
	c.PollInterval = 3 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
