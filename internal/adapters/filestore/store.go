package filestore

// Package filestore persists the session token in a plain file. It is the
// fallback token store for hosts where the platform credential store is
// unavailable.

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Store implements ports.TokenStore on a single 0600 file.
type Store struct {
	path string
}

// NewStore creates a file-backed token store at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored token, or empty string when the file is absent.
func (s *Store) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read token file")
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed.
func (s *Store) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create token directory")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "write token file")
	}
	return nil
}

// Delete removes the token file. Deleting an absent file is not an error.
func (s *Store) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete token file")
	}
	return nil
}
