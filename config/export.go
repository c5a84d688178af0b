package config

import "strings"

// ExportConfig controls the card export pipeline.
type ExportConfig struct {
	// StagingDir is the scratch directory for in-flight export files.
	// Empty selects the OS temp dir.
	StagingDir string `env:"SMARTWAVE_EXPORT_STAGING_DIR"`

	// LibraryDir is the media-library root exported cards are saved into.
	// Empty selects a Pictures directory under the user home.
	LibraryDir string `env:"SMARTWAVE_EXPORT_LIBRARY_DIR"`

	// AlbumName is the album exported cards are grouped under.
	AlbumName string `env:"SMARTWAVE_EXPORT_ALBUM" envDefault:"SmartWave"`

	// QRSize is the pixel size of the encoded QR payload.
	QRSize int `env:"SMARTWAVE_EXPORT_QR_SIZE" envDefault:"200"`

	// CardWidth is the pixel width cards render at; height follows the
	// card aspect ratio.
	CardWidth int `env:"SMARTWAVE_EXPORT_CARD_WIDTH" envDefault:"1050"`
}

// Sanitize applies guardrails to export configuration values.
func (c *ExportConfig) Sanitize() {
	if strings.TrimSpace(c.AlbumName) == "" {
		c.AlbumName = "SmartWave"
	}
	if c.QRSize < 64 {
		c.QRSize = 200
	}
	if c.CardWidth < 342 {
		c.CardWidth = 1050
	}
}
