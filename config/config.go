package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API endpoint configuration
//   - auth.go: Authentication and deep-link configuration
//   - storage.go: Token storage configuration
//   - export.go: Card export pipeline configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, .env
	// loading). Set DEV=true or SMARTWAVE_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	API           APIConfig
	Auth          AuthConfig
	Storage       StorageConfig
	Export        ExportConfig
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Auth.Sanitize()
	c.Storage.Sanitize()
	c.Export.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks SMARTWAVE_ENV as a fallback for the DEV flag.
func (c *AppConfig) detectDevMode() {
	if c.IsDev {
		return
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("SMARTWAVE_ENV")), "development") {
		c.IsDev = true
	}
}
