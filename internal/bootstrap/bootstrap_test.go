package bootstrap

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwave/smartwave-go/config"
	"github.com/smartwave/smartwave-go/internal/adapters/filestore"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.smartwave.name", cfg.API.BaseURL)
	assert.Equal(t, config.StorageModeAuto, cfg.Storage.Mode)
}

func TestBuildTokenStore_FileMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "token")

	store, err := buildTokenStore(config.StorageConfig{
		Mode: config.StorageModeFile,
		File: path,
	}, logger)
	require.NoError(t, err)

	_, ok := store.(*filestore.Store)
	assert.True(t, ok, "file mode must select the file store")
}

func TestBuildApp(t *testing.T) {
	t.Setenv("SMARTWAVE_STORAGE_MODE", "file")
	t.Setenv("SMARTWAVE_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))
	t.Setenv("SMARTWAVE_EXPORT_LIBRARY_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := BuildApp(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.NotNil(t, app.Session)
	assert.NotNil(t, app.Export)
	assert.NotNil(t, app.Passes)
	assert.NotNil(t, app.Notifications)
	assert.NotNil(t, app.Profile)
}
