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

// TokenSource supplies the current bearer token. Satisfied by
// SessionService; an empty token means signed out.
type TokenSource interface {
	Token() string
}

// WalletLinker builds wallet download URLs. Satisfied by api.Client.
type WalletLinker interface {
	WalletURL(kind, shortURL, token string) string
}

// PassServiceOptions groups dependencies for PassService.
type PassServiceOptions struct {
	Backend ports.Backend // Required
	Tokens  TokenSource   // Required
	Wallet  WalletLinker  // Optional: wallet links disabled when absent
	Logger  *slog.Logger  // Optional
}

// PassService exposes the event/access pass surface.
type PassService struct {
	backend ports.Backend
	tokens  TokenSource
	wallet  WalletLinker
	logger  *slog.Logger
}

// NewPassService constructs a PassService.
func NewPassService(opts PassServiceOptions) (*PassService, error) {
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
	return &PassService{
		backend: opts.Backend,
		tokens:  opts.Tokens,
		wallet:  opts.Wallet,
		logger:  logger,
	}, nil
}

func (s *PassService) token() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", apperrors.Unauthorized("not signed in").
			WithHint("Sign in first.")
	}
	return token, nil
}

// List returns the pass listing, split into public and corporate passes.
func (s *PassService) List(ctx context.Context) (card.PassList, error) {
	token, err := s.token()
	if err != nil {
		return card.PassList{}, err
	}
	return s.backend.Passes(ctx, token)
}

// Get fetches one pass.
func (s *PassService) Get(ctx context.Context, passID string) (card.Pass, error) {
	token, err := s.token()
	if err != nil {
		return card.Pass{}, err
	}
	if passID == "" {
		return card.Pass{}, apperrors.Validation("pass id must not be empty")
	}
	return s.backend.Pass(ctx, token, passID)
}

// Membership returns the caller's join record for a pass, nil when none.
func (s *PassService) Membership(ctx context.Context, passID string) (*card.Membership, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.backend.PassMembership(ctx, token, passID)
}

// RequestAccess asks to join a pass. The returned membership is reported
// as pending even when the backend omits the status, so the caller can
// show the requested state immediately.
func (s *PassService) RequestAccess(ctx context.Context, passID string) (card.Membership, error) {
	token, err := s.token()
	if err != nil {
		return card.Membership{}, err
	}
	if passID == "" {
		return card.Membership{}, apperrors.Validation("pass id must not be empty")
	}

	membership, err := s.backend.RequestPassAccess(ctx, token, passID)
	if err != nil {
		return card.Membership{}, err
	}
	if membership.Status == card.MembershipNone {
		membership.Status = card.MembershipPending
	}
	s.logger.InfoContext(ctx, "pass access requested", "pass_id", passID, "status", membership.Status)
	return membership, nil
}

// WalletURL builds the wallet download link for the card behind shortURL.
// kind is "apple" or "google".
func (s *PassService) WalletURL(kind, shortURL string) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}
	if s.wallet == nil {
		return "", apperrors.Internal("wallet links not configured")
	}
	if kind != "apple" && kind != "google" {
		return "", apperrors.Validation("wallet kind must be apple or google")
	}
	return s.wallet.WalletURL(kind, shortURL, token), nil
}
