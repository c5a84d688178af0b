package config

import "strings"

// Token storage modes.
const (
	StorageModeAuto    = "auto"
	StorageModeKeyring = "keyring"
	StorageModeFile    = "file"
)

// StorageConfig controls where the session token persists.
type StorageConfig struct {
	// Mode selects the token store: "keyring" (OS credential store),
	// "file" (plain file), or "auto" (keyring with file fallback).
	Mode string `env:"SMARTWAVE_STORAGE_MODE" envDefault:"auto"`

	// Service is the keyring service name the token entry lives under.
	Service string `env:"SMARTWAVE_KEYRING_SERVICE" envDefault:"smartwave"`

	// File is the token file path for file mode. Empty selects a default
	// under the user config directory.
	File string `env:"SMARTWAVE_TOKEN_FILE"`
}

// Sanitize applies guardrails to storage configuration values.
func (c *StorageConfig) Sanitize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case StorageModeKeyring, StorageModeFile, StorageModeAuto:
	default:
		c.Mode = StorageModeAuto
	}
	if strings.TrimSpace(c.Service) == "" {
		c.Service = "smartwave"
	}
}
