package medialib

// Package medialib is the photo-library sink for exported cards. On a
// desktop host the "library" is a pictures directory: assets land flat in
// the root (the Recents analog) and albums are subdirectories holding
// copies. Creating an album that already exists appends to it.

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Library implements ports.MediaLibrary on a directory tree.
type Library struct {
	root string
}

// NewLibrary creates a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{root: dir}
}

// RequestPermission reports whether the library root is writable. A false
// result mirrors the user declining the platform permission prompt: it is
// a decision, not an error.
func (l *Library) RequestPermission(_ context.Context) (bool, error) {
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		if os.IsPermission(err) {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "prepare media library")
	}

	probe := filepath.Join(l.root, ".smartwave-probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		if os.IsPermission(err) {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "probe media library")
	}
	_ = os.Remove(probe)
	return true, nil
}

// CreateAsset imports the staged file into the library root and returns
// the asset ID (its filename).
func (l *Library) CreateAsset(_ context.Context, stagedPath string) (string, error) {
	id := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(stagedPath))
	if err := copyFile(stagedPath, filepath.Join(l.root, id)); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "import asset into library")
	}
	return id, nil
}

// EnsureAlbum creates the named album if absent and places the first asset
// in it. Calling it again with the same name appends instead.
func (l *Library) EnsureAlbum(_ context.Context, name, firstAssetID string) error {
	albumDir := filepath.Join(l.root, name)
	if err := os.MkdirAll(albumDir, 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create album")
	}
	return l.copyIntoAlbum(albumDir, firstAssetID)
}

// AddToAlbum appends assets to an existing album.
func (l *Library) AddToAlbum(_ context.Context, name string, assetIDs ...string) error {
	albumDir := filepath.Join(l.root, name)
	if _, err := os.Stat(albumDir); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, fmt.Sprintf("album %q does not exist", name))
	}
	for _, id := range assetIDs {
		if err := l.copyIntoAlbum(albumDir, id); err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) copyIntoAlbum(albumDir, assetID string) error {
	src := filepath.Join(l.root, assetID)
	if err := copyFile(src, filepath.Join(albumDir, assetID)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "add asset to album")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read side

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
