package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; variables already
// set in the process environment are not overridden by the file.
//
// Recognized variables:
//
//	FINDRA_API_URL          API root URL
//	FINDRA_SESSION_DB       path to the sqlite session database
//	FINDRA_POLL_INTERVAL    polling interval, e.g. "3s"
//	FINDRA_REQUEST_TIMEOUT  per-request timeout, e.g. "15s"
//	FINDRA_LOG_LEVEL        debug, info, warn or error
func parseEnv(cfg *Config) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("FINDRA_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FINDRA_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("FINDRA_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("FINDRA_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FINDRA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
