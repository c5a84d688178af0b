package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/ports"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Backend ports.Backend // Required
	Tokens  TokenSource   // Required
	Logger  *slog.Logger  // Optional
}

// ProfileService exposes the card profile behind the session.
type ProfileService struct {
	backend ports.Backend
	tokens  TokenSource
	logger  *slog.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(opts ProfileServiceOptions) (*ProfileService, error) {
	if opts.Backend == nil {
		return nil, errors.New("Backend is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("TokenSource is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ProfileService{backend: opts.Backend, tokens: opts.Tokens, logger: logger}, nil
}

func (s *ProfileService) token() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", apperrors.Unauthorized("not signed in").WithHint("Sign in first.")
	}
	return token, nil
}

// Get fetches the caller's profile.
func (s *ProfileService) Get(ctx context.Context) (card.Profile, error) {
	token, err := s.token()
	if err != nil {
		return card.Profile{}, err
	}
	return s.backend.Profile(ctx, token)
}

// Update applies a partial profile update. Admin-managed profiles are
// rejected by the backend; callers should check IsAdminManaged before
// offering edit affordances.
func (s *ProfileService) Update(ctx context.Context, updates map[string]any) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return apperrors.Validation("no profile fields to update")
	}
	if err := s.backend.UpdateProfile(ctx, token, updates); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "profile updated", "fields", len(updates))
	return nil
}
