package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/smartwave/smartwave-go/internal/cardimage"
	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/observability/metrics"
	"github.com/smartwave/smartwave-go/internal/observability/statsd"
	"github.com/smartwave/smartwave-go/internal/ports"
	"github.com/smartwave/smartwave-go/internal/vcard"
)

// CardRenderer is the composition surface ExportService draws with.
// Satisfied by cardimage.Renderer.
type CardRenderer interface {
	RenderFront(c cardimage.Card) (image.Image, error)
	RenderBack(c cardimage.Card) (image.Image, error)
	RenderCombined(c cardimage.Card) (image.Image, error)
	RenderCapture(c cardimage.Card) (image.Image, error)
}

// ExportServiceOptions groups dependencies for ExportService.
type ExportServiceOptions struct {
	QR       ports.QREncoder    // Required: vCard payload rasterizer
	Renderer CardRenderer       // Required: card composition
	Fetcher  ports.ImageFetcher // Optional: remote photo/logo prefetch
	Library  ports.MediaLibrary // Required for the save variants
	Share    ports.ShareSink    // Required for the share variant
	Logger   *slog.Logger       // Optional
	Metrics  statsd.Sink        // Optional

	// StagingDir is the scratch directory for job files. Defaults to the
	// OS temp dir.
	StagingDir string
	// AlbumName is the library album exports land in.
	AlbumName string
	// QRSize is the pixel size of the encoded QR payload.
	QRSize int
}

// Export pipeline defaults, matching the visible card.
const (
	DefaultAlbumName = "SmartWave"
	DefaultQRSize    = 200
)

// ExportService runs card export jobs: vCard → QR → prefetch → compose →
// snapshot → stage → sink. Each job stages its files under a unique name
// and cleans them up when done, whatever the outcome.
//
// Stage ordering is deliberate: QR generation runs before any snapshot so
// a failed payload aborts the job with nothing staged, and remote images
// are prefetched before composition so a snapshot never contains a
// half-resolved image.
type ExportService struct {
	qr       ports.QREncoder
	renderer CardRenderer
	fetcher  ports.ImageFetcher
	library  ports.MediaLibrary
	share    ports.ShareSink
	logger   *slog.Logger
	metrics  statsd.Sink

	stagingDir string
	albumName  string
	qrSize     int
}

// NewExportService constructs an ExportService.
func NewExportService(opts ExportServiceOptions) (*ExportService, error) {
	if opts.QR == nil {
		return nil, errors.New("QREncoder is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("CardRenderer is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stagingDir := opts.StagingDir
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	albumName := opts.AlbumName
	if albumName == "" {
		albumName = DefaultAlbumName
	}
	qrSize := opts.QRSize
	if qrSize <= 0 {
		qrSize = DefaultQRSize
	}
	return &ExportService{
		qr:         opts.QR,
		renderer:   opts.Renderer,
		fetcher:    opts.Fetcher,
		library:    opts.Library,
		share:      opts.Share,
		logger:     logger,
		metrics:    opts.Metrics,
		stagingDir: stagingDir,
		albumName:  albumName,
		qrSize:     qrSize,
	}, nil
}

// ExportResult describes a finished export job.
type ExportResult struct {
	JobID    string
	Variant  string
	AssetIDs []string
	// Shared reports whether the rich share surface took the file (share
	// variant only).
	Shared bool
}

// exportJob carries per-job state through the pipeline stages.
type exportJob struct {
	id      string
	variant string
	staged  []string
	started time.Time
}

// SaveCard exports the front and back faces to the media library.
func (s *ExportService) SaveCard(ctx context.Context, profile card.Profile, theme card.Theme) (ExportResult, error) {
	return s.save(ctx, "save", profile, theme, false)
}

// SaveCardCapture is the degraded save: no remote image fetching, the
// initials block stands in for the photo, and both faces land in one
// combined image. Used when the full composition cannot be produced.
func (s *ExportService) SaveCardCapture(ctx context.Context, profile card.Profile, theme card.Theme) (ExportResult, error) {
	return s.save(ctx, "capture", profile, theme, true)
}

func (s *ExportService) save(ctx context.Context, variant string, profile card.Profile, theme card.Theme, capture bool) (ExportResult, error) {
	if s.library == nil {
		return ExportResult{}, apperrors.Internal("no media library configured")
	}
	job := s.newJob(variant)
	defer s.cleanup(job)

	result, err := s.runSave(ctx, job, profile, theme, capture)
	s.emitOutcome(job, err)
	return result, err
}

func (s *ExportService) runSave(ctx context.Context, job *exportJob, profile card.Profile, theme card.Theme, capture bool) (ExportResult, error) {
	granted, err := s.library.RequestPermission(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	if !granted {
		return ExportResult{}, apperrors.PermissionDenied("media library access denied").
			WithHint("Allow photo access in system settings to save cards.")
	}

	qrImg, err := s.generateQR(profile)
	if err != nil {
		return ExportResult{}, err
	}

	c := cardimage.Card{Profile: profile, Theme: theme, QR: qrImg}

	var images []stagedImage
	if capture {
		combined, rerr := s.renderer.RenderCapture(c)
		if rerr != nil {
			return ExportResult{}, rerr
		}
		images = []stagedImage{{kind: "share", img: combined}}
	} else {
		c.Photo, c.Logo = s.prefetch(ctx, profile)
		if err := ctx.Err(); err != nil {
			return ExportResult{}, apperrors.Canceled("export canceled")
		}

		front, rerr := s.renderer.RenderFront(c)
		if rerr != nil {
			return ExportResult{}, rerr
		}
		back, rerr := s.renderer.RenderBack(c)
		if rerr != nil {
			return ExportResult{}, rerr
		}
		images = []stagedImage{{kind: "front", img: front}, {kind: "back", img: back}}
	}

	paths, err := s.stage(job, images)
	if err != nil {
		return ExportResult{}, err
	}

	assetIDs := make([]string, 0, len(paths))
	for _, path := range paths {
		id, aerr := s.library.CreateAsset(ctx, path)
		if aerr != nil {
			return ExportResult{}, apperrors.Wrap(aerr, apperrors.ErrCodeInternal, "import card into library")
		}
		assetIDs = append(assetIDs, id)
	}

	if err := s.library.EnsureAlbum(ctx, s.albumName, assetIDs[0]); err != nil {
		// The assets are saved either way; album placement is cosmetic.
		s.logger.WarnContext(ctx, "album placement failed", "album", s.albumName, "error", err)
	} else if len(assetIDs) > 1 {
		if err := s.library.AddToAlbum(ctx, s.albumName, assetIDs[1:]...); err != nil {
			s.logger.WarnContext(ctx, "album placement failed", "album", s.albumName, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "card saved",
		"job_id", job.id,
		"variant", job.variant,
		"assets", len(assetIDs))
	return ExportResult{JobID: job.id, Variant: job.variant, AssetIDs: assetIDs}, nil
}

// ShareCard exports a single combined image and hands it to the share
// surface, falling back to a plain path handoff when none is available.
func (s *ExportService) ShareCard(ctx context.Context, profile card.Profile, theme card.Theme) (ExportResult, error) {
	if s.share == nil {
		return ExportResult{}, apperrors.Internal("no share sink configured")
	}
	job := s.newJob("share")
	defer s.cleanup(job)

	result, err := s.runShare(ctx, job, profile, theme)
	s.emitOutcome(job, err)
	return result, err
}

func (s *ExportService) runShare(ctx context.Context, job *exportJob, profile card.Profile, theme card.Theme) (ExportResult, error) {
	qrImg, err := s.generateQR(profile)
	if err != nil {
		return ExportResult{}, err
	}

	c := cardimage.Card{Profile: profile, Theme: theme, QR: qrImg}
	c.Photo, c.Logo = s.prefetch(ctx, profile)
	if err := ctx.Err(); err != nil {
		return ExportResult{}, apperrors.Canceled("export canceled")
	}

	combined, err := s.renderer.RenderCombined(c)
	if err != nil {
		return ExportResult{}, err
	}

	paths, err := s.stage(job, []stagedImage{{kind: "share", img: combined}})
	if err != nil {
		return ExportResult{}, err
	}
	path := paths[0]

	title := profile.FullName() + " - SmartWave card"
	if s.share.Available(ctx) {
		if err := s.share.Share(ctx, path, title); err != nil {
			return ExportResult{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hand off card to share surface")
		}
		s.logger.InfoContext(ctx, "card shared", "job_id", job.id)
		return ExportResult{JobID: job.id, Variant: job.variant, Shared: true}, nil
	}

	if err := s.share.ShareFallback(ctx, path, "Card image staged for sharing"); err != nil {
		return ExportResult{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "fallback share")
	}
	return ExportResult{JobID: job.id, Variant: job.variant, Shared: false}, nil
}

// generateQR builds the vCard payload and rasterizes it. Runs before any
// snapshot: a failure here aborts the job with nothing staged.
func (s *ExportService) generateQR(profile card.Profile) (image.Image, error) {
	payload := vcard.Marshal(profile)
	data, err := s.qr.EncodePNG(payload, s.qrSize)
	if err != nil {
		if apperrors.GetCode(err) == apperrors.ErrCodeGenerationFailed {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "encode QR payload")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "decode QR image")
	}
	return img, nil
}

// prefetch resolves the remote photo and logo. A failed fetch drops the
// image rather than the job; the renderer substitutes the initials block.
func (s *ExportService) prefetch(ctx context.Context, profile card.Profile) (photo, logo image.Image) {
	if s.fetcher == nil {
		return nil, nil
	}
	if url := profile.Photo; url != "" {
		img, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			s.logger.WarnContext(ctx, "photo prefetch failed", "error", err)
		} else {
			photo = img
		}
	}
	if url := profile.CompanyLogo; url != "" {
		img, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			s.logger.WarnContext(ctx, "logo prefetch failed", "error", err)
		} else {
			logo = img
		}
	}
	return photo, logo
}

type stagedImage struct {
	kind string
	img  image.Image
}

// stage snapshots images into the scratch directory. File names combine a
// millisecond timestamp with a job-unique suffix so two jobs in the same
// tick cannot collide.
func (s *ExportService) stage(job *exportJob, images []stagedImage) ([]string, error) {
	if err := os.MkdirAll(s.stagingDir, 0o700); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSnapshotUnavailable, "prepare staging directory")
	}

	paths := make([]string, 0, len(images))
	ts := time.Now().UnixMilli()
	for _, si := range images {
		data, err := cardimage.EncodePNG(si.img)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeSnapshotUnavailable, "snapshot card image")
		}
		name := fmt.Sprintf("smartwave_card_%s_%d_%s.png", si.kind, ts, job.shortID())
		path := filepath.Join(s.stagingDir, name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeSnapshotUnavailable, "stage card image")
		}
		job.staged = append(job.staged, path)
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *ExportService) newJob(variant string) *exportJob {
	return &exportJob{
		id:      uuid.NewString(),
		variant: variant,
		started: time.Now(),
	}
}

func (j *exportJob) shortID() string {
	return j.id[:8]
}

// cleanup removes every staged file. Always runs, success or not.
func (s *ExportService) cleanup(job *exportJob) {
	for _, path := range job.staged {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("staged file cleanup failed", "path", path, "error", err)
		}
	}
	job.staged = nil
}

func (s *ExportService) emitOutcome(job *exportJob, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.EmitExportOutcome(s.metrics, metrics.ExportOutcome{
		Variant:  job.variant,
		Result:   result,
		Duration: time.Since(job.started),
		Err:      err,
	})
}
