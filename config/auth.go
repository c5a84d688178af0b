package config

import "strings"

// AuthConfig contains authentication and deep-link configuration.
type AuthConfig struct {
	// GoogleWebClientID is the OAuth client the backend expects for the
	// federated flow. Optional: password sign-in works without it.
	GoogleWebClientID string `env:"SMARTWAVE_GOOGLE_WEB_CLIENT_ID"`

	// RedirectScheme is the custom URL scheme for federated redirects
	// (scheme://redirect?token=...).
	RedirectScheme string `env:"SMARTWAVE_REDIRECT_SCHEME" envDefault:"smartwave"`
}

// Sanitize applies guardrails to auth configuration values.
func (c *AuthConfig) Sanitize() {
	c.RedirectScheme = strings.TrimSpace(strings.TrimSuffix(c.RedirectScheme, "://"))
	if c.RedirectScheme == "" {
		c.RedirectScheme = "smartwave"
	}
}

// RedirectURL returns the deep-link return URL for federated sign-in.
func (c *AuthConfig) RedirectURL() string {
	return c.RedirectScheme + "://redirect"
}
