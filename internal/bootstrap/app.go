package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/smartwave/smartwave-go/config"
	"github.com/smartwave/smartwave-go/internal/adapters/filestore"
	"github.com/smartwave/smartwave-go/internal/adapters/imagefetch"
	"github.com/smartwave/smartwave-go/internal/adapters/keyring"
	"github.com/smartwave/smartwave-go/internal/adapters/medialib"
	"github.com/smartwave/smartwave-go/internal/adapters/qrenc"
	"github.com/smartwave/smartwave-go/internal/adapters/share"
	"github.com/smartwave/smartwave-go/internal/api"
	"github.com/smartwave/smartwave-go/internal/cardimage"
	"github.com/smartwave/smartwave-go/internal/observability/statsd"
	"github.com/smartwave/smartwave-go/internal/ports"
	"github.com/smartwave/smartwave-go/internal/service"
)

// tokenKey names the single token entry in the credential store.
const tokenKey = "smartwave_token"

// App is the wired application container.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	Client  *api.Client
	Metrics *statsd.Client

	Session       *service.SessionService
	Export        *service.ExportService
	Passes        *service.PassService
	Notifications *service.NotificationService
	Profile       *service.ProfileService
}

// BuildApp wires adapters and services from configuration.
func BuildApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	client, err := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	metricsClient, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  "smartwave",
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build metrics client: %w", err)
	}

	store, err := buildTokenStore(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	session, err := service.NewSessionService(service.SessionServiceOptions{
		Backend: client,
		Store:   store,
		Logger:  logger,
		Metrics: metricsClient,
	})
	if err != nil {
		return nil, fmt.Errorf("build session service: %w", err)
	}

	renderer, err := cardimage.NewRenderer(cfg.Export.CardWidth)
	if err != nil {
		return nil, fmt.Errorf("build card renderer: %w", err)
	}

	libraryDir := cfg.Export.LibraryDir
	if libraryDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil, fmt.Errorf("resolve home dir: %w", herr)
		}
		libraryDir = filepath.Join(home, "Pictures", "SmartWave Library")
	}

	export, err := service.NewExportService(service.ExportServiceOptions{
		QR:         qrenc.NewEncoder(),
		Renderer:   renderer,
		Fetcher:    imagefetch.NewFetcher(nil),
		Library:    medialib.NewLibrary(libraryDir),
		Share:      share.NewSink(os.Stdout),
		Logger:     logger,
		Metrics:    metricsClient,
		StagingDir: cfg.Export.StagingDir,
		AlbumName:  cfg.Export.AlbumName,
		QRSize:     cfg.Export.QRSize,
	})
	if err != nil {
		return nil, fmt.Errorf("build export service: %w", err)
	}

	passes, err := service.NewPassService(service.PassServiceOptions{
		Backend: client,
		Tokens:  session,
		Wallet:  client,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build pass service: %w", err)
	}

	notifications, err := service.NewNotificationService(service.NotificationServiceOptions{
		Backend: client,
		Tokens:  session,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build notification service: %w", err)
	}

	profile, err := service.NewProfileService(service.ProfileServiceOptions{
		Backend: client,
		Tokens:  session,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build profile service: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		Client:        client,
		Metrics:       metricsClient,
		Session:       session,
		Export:        export,
		Passes:        passes,
		Notifications: notifications,
		Profile:       profile,
	}, nil
}

// Close releases long-lived resources.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.Metrics.Close()
}

// buildTokenStore selects the token store per configuration. Auto mode
// probes the platform credential store and falls back to a file under the
// user config directory when it is unusable.
func buildTokenStore(cfg config.StorageConfig, logger *slog.Logger) (ports.TokenStore, error) {
	switch cfg.Mode {
	case config.StorageModeKeyring:
		return keyring.NewStore(cfg.Service, tokenKey), nil
	case config.StorageModeFile:
		path, err := tokenFilePath(cfg)
		if err != nil {
			return nil, err
		}
		return filestore.NewStore(path), nil
	default: // auto
		if keyring.Available() {
			return keyring.NewStore(cfg.Service, tokenKey), nil
		}
		path, err := tokenFilePath(cfg)
		if err != nil {
			return nil, err
		}
		logger.Debug("credential store unavailable, using file token store", "path", path)
		return filestore.NewStore(path), nil
	}
}

func tokenFilePath(cfg config.StorageConfig) (string, error) {
	if cfg.File != "" {
		return cfg.File, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir for token file: %w", err)
	}
	return filepath.Join(dir, "smartwave", "token"), nil
}
