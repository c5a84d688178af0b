package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://www.smartwave.name", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "smartwave", cfg.Auth.RedirectScheme)
	assert.Equal(t, "smartwave://redirect", cfg.Auth.RedirectURL())
	assert.Equal(t, StorageModeAuto, cfg.Storage.Mode)
	assert.Equal(t, "SmartWave", cfg.Export.AlbumName)
	assert.Equal(t, 200, cfg.Export.QRSize)
	assert.Equal(t, 1050, cfg.Export.CardWidth)
	assert.False(t, cfg.Observability.Metrics.IsEnabled())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SMARTWAVE_API_BASE_URL", "https://staging.smartwave.name/")
	t.Setenv("SMARTWAVE_API_TIMEOUT", "3s")
	t.Setenv("SMARTWAVE_STORAGE_MODE", "FILE")
	t.Setenv("SMARTWAVE_EXPORT_QR_SIZE", "400")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://staging.smartwave.name", cfg.API.BaseURL, "trailing slash trimmed")
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageModeFile, cfg.Storage.Mode)
	assert.Equal(t, 400, cfg.Export.QRSize)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		API:     APIConfig{BaseURL: "  ", Timeout: -1},
		Auth:    AuthConfig{RedirectScheme: "myapp://"},
		Storage: StorageConfig{Mode: "vault"},
		Export:  ExportConfig{QRSize: 10, CardWidth: 50},
	}
	cfg.Sanitize()

	assert.Equal(t, "https://www.smartwave.name", cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, "myapp", cfg.Auth.RedirectScheme)
	assert.Equal(t, StorageModeAuto, cfg.Storage.Mode)
	assert.Equal(t, 200, cfg.Export.QRSize)
	assert.Equal(t, 1050, cfg.Export.CardWidth)
}

func TestDevModeFallback(t *testing.T) {
	t.Setenv("SMARTWAVE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}

func TestMetricsDisabledWithoutAddress(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "}
	cfg.Sanitize()
	assert.False(t, cfg.IsEnabled())
}
