package backend

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/smartwave/smartwave-go/internal/ports"
)

var (
	_ ports.QREncoder    = (*MockQREncoder)(nil)
	_ ports.ImageFetcher = (*MockImageFetcher)(nil)
	_ ports.MediaLibrary = (*MockMediaLibrary)(nil)
	_ ports.ShareSink    = (*MockShareSink)(nil)
)

// MockQREncoder doubles the QR rasterizer.
type MockQREncoder struct {
	EncodePNGFunc func(text string, size int) ([]byte, error)
	Calls         int
}

func (m *MockQREncoder) EncodePNG(text string, size int) ([]byte, error) {
	m.Calls++
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(text, size)
	}
	// A 1x1 PNG placeholder keeps tests independent of a real encoder.
	return onePixelPNG, nil
}

// onePixelPNG is a valid 1x1 opaque PNG.
var onePixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
	0xde, 0x00, 0x00, 0x00, 0x10, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x62, 0x60, 0x60, 0x00,
	0x04, 0x00, 0x00, 0xff, 0xff, 0x00, 0x0c, 0x00,
	0x03, 0x71, 0x91, 0x8b, 0x17, 0x00, 0x00, 0x00,
	0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60,
	0x82,
}

// MockImageFetcher doubles the remote image prefetcher.
type MockImageFetcher struct {
	FetchFunc func(ctx context.Context, url string) (image.Image, error)

	mu   sync.Mutex
	URLs []string
}

func (m *MockImageFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	m.mu.Lock()
	m.URLs = append(m.URLs, url)
	m.mu.Unlock()
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

// MockMediaLibrary records the save flow.
type MockMediaLibrary struct {
	RequestPermissionFunc func(ctx context.Context) (bool, error)
	CreateAssetFunc       func(ctx context.Context, stagedPath string) (string, error)
	EnsureAlbumFunc       func(ctx context.Context, name, firstAssetID string) error
	AddToAlbumFunc        func(ctx context.Context, name string, assetIDs ...string) error

	mu           sync.Mutex
	CreatedPaths []string
	Albums       []string
}

func (m *MockMediaLibrary) RequestPermission(ctx context.Context) (bool, error) {
	if m.RequestPermissionFunc != nil {
		return m.RequestPermissionFunc(ctx)
	}
	return true, nil
}

func (m *MockMediaLibrary) CreateAsset(ctx context.Context, stagedPath string) (string, error) {
	m.mu.Lock()
	m.CreatedPaths = append(m.CreatedPaths, stagedPath)
	n := len(m.CreatedPaths)
	m.mu.Unlock()
	if m.CreateAssetFunc != nil {
		return m.CreateAssetFunc(ctx, stagedPath)
	}
	return fmt.Sprintf("asset-%d", n), nil
}

func (m *MockMediaLibrary) EnsureAlbum(ctx context.Context, name, firstAssetID string) error {
	m.mu.Lock()
	m.Albums = append(m.Albums, name)
	m.mu.Unlock()
	if m.EnsureAlbumFunc != nil {
		return m.EnsureAlbumFunc(ctx, name, firstAssetID)
	}
	return nil
}

func (m *MockMediaLibrary) AddToAlbum(ctx context.Context, name string, assetIDs ...string) error {
	if m.AddToAlbumFunc != nil {
		return m.AddToAlbumFunc(ctx, name, assetIDs...)
	}
	return nil
}

// MockShareSink records share handoffs.
type MockShareSink struct {
	AvailableFunc     func(ctx context.Context) bool
	ShareFunc         func(ctx context.Context, path, title string) error
	ShareFallbackFunc func(ctx context.Context, path, message string) error

	SharedPaths   []string
	FallbackPaths []string
}

func (m *MockShareSink) Available(ctx context.Context) bool {
	if m.AvailableFunc != nil {
		return m.AvailableFunc(ctx)
	}
	return true
}

func (m *MockShareSink) Share(ctx context.Context, path, title string) error {
	m.SharedPaths = append(m.SharedPaths, path)
	if m.ShareFunc != nil {
		return m.ShareFunc(ctx, path, title)
	}
	return nil
}

func (m *MockShareSink) ShareFallback(ctx context.Context, path, message string) error {
	m.FallbackPaths = append(m.FallbackPaths, path)
	if m.ShareFallbackFunc != nil {
		return m.ShareFallbackFunc(ctx, path, message)
	}
	return nil
}
