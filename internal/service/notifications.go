package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/htmltext"
	"github.com/smartwave/smartwave-go/internal/ports"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Backend ports.Backend // Required
	Tokens  TokenSource   // Required
	Logger  *slog.Logger  // Optional
}

// NotificationService exposes the notification inbox. Bodies arrive as
// HTML fragments; the service fills PlainBody with a stripped rendition
// for text display.
type NotificationService struct {
	backend ports.Backend
	tokens  TokenSource
	logger  *slog.Logger
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(opts NotificationServiceOptions) (*NotificationService, error) {
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
	return &NotificationService{backend: opts.Backend, tokens: opts.Tokens, logger: logger}, nil
}

func (s *NotificationService) token() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", apperrors.Unauthorized("not signed in").WithHint("Sign in first.")
	}
	return token, nil
}

// List returns notifications, unread-only unless includeRead is set.
func (s *NotificationService) List(ctx context.Context, includeRead bool) ([]card.Notification, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	items, err := s.backend.Notifications(ctx, token, includeRead)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].PlainBody = htmltext.Strip(items[i].Body)
	}
	return items, nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.List(ctx, false)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	if notificationID == "" {
		return apperrors.Validation("notification id must not be empty")
	}
	return s.backend.MarkNotificationRead(ctx, token, notificationID)
}
