package config

import (
	"strings"
	"time"
)

// DefaultAPITimeout bounds every backend request.
const DefaultAPITimeout = 15 * time.Second

// APIConfig contains backend endpoint configuration.
type APIConfig struct {
	// BaseURL is the backend root. All mobile API paths hang off it.
	BaseURL string `env:"SMARTWAVE_API_BASE_URL" envDefault:"https://www.smartwave.name"`

	// Timeout is the per-request deadline. Requests that exceed it surface
	// as network errors.
	Timeout time.Duration `env:"SMARTWAVE_API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "https://www.smartwave.name"
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultAPITimeout
	}
}
