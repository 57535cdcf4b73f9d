package api

import (
	"os"
	"time"
)

// DefaultBaseURL is the production API root. Each deployment can point
// the client elsewhere with ANUVAT_API_URL.
const DefaultBaseURL = "https://anouvat.web.app/v1"

// Config holds the HTTP client configuration.
type Config struct {
	// BaseURL is the absolute API root; request paths are appended to it.
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("ANUVAT_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("ANUVAT_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}
