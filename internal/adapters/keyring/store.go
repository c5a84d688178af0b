package keyring

// Package keyring persists the session token in the platform credential
// store (Keychain on macOS, Secret Service on Linux, Credential Manager on
// Windows) via zalando/go-keyring.

import (
	"context"
	"errors"

	gokeyring "github.com/zalando/go-keyring"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Store implements ports.TokenStore on the OS credential store.
type Store struct {
	service string
	key     string
}

// NewStore creates a keyring-backed token store. service namespaces the
// entry per application; key names the single token entry.
func NewStore(service, key string) *Store {
	return &Store{service: service, key: key}
}

// Load returns the stored token, or empty string when none is stored.
func (s *Store) Load(_ context.Context) (string, error) {
	token, err := gokeyring.Get(s.service, s.key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", nil
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read token from keyring")
	}
	return token, nil
}

// Save writes the token entry, replacing any previous value.
func (s *Store) Save(_ context.Context, token string) error {
	if err := gokeyring.Set(s.service, s.key, token); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "write token to keyring")
	}
	return nil
}

// Delete removes the token entry. Deleting an absent entry is not an error.
func (s *Store) Delete(_ context.Context) error {
	if err := gokeyring.Delete(s.service, s.key); err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete token from keyring")
	}
	return nil
}

// Available probes whether the platform credential store is usable, so the
// caller can fall back to file storage (e.g. headless hosts without a
// Secret Service daemon).
func Available() bool {
	const probe = "smartwave-availability-probe"
	if err := gokeyring.Set(probe, probe, "1"); err != nil {
		return false
	}
	_ = gokeyring.Delete(probe, probe)
	return true
}
