package backend

// Package backend contains simple hand-written test doubles for the
// client ports. These are lightweight and suitable for unit tests without
// codegen: set only the func fields a test cares about, everything else
// returns zero values.

import (
	"context"
	"sync"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	"github.com/smartwave/smartwave-go/internal/domain/session"
	"github.com/smartwave/smartwave-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Backend    = (*MockBackend)(nil)
	_ ports.TokenStore = (*MemoryTokenStore)(nil)
)

// MockBackend simulates the remote API with per-method func fields.
type MockBackend struct {
	LoginFunc                  func(ctx context.Context, email, password string) (session.Credentials, error)
	BeginGoogleSignInFunc      func(ctx context.Context, returnURL, codeChallenge, codeVerifier string) (string, error)
	ExchangeGoogleCodeFunc     func(ctx context.Context, code, redirectURI string) (session.Credentials, error)
	LoginWithGoogleIDTokenFunc func(ctx context.Context, idToken string) (session.Credentials, error)
	LoginWithAppleFunc         func(ctx context.Context, identityToken string) (session.Credentials, error)
	ProfileFunc                func(ctx context.Context, token string) (card.Profile, error)
	UpdateProfileFunc          func(ctx context.Context, token string, updates map[string]any) error
	PassesFunc                 func(ctx context.Context, token string) (card.PassList, error)
	PassFunc                   func(ctx context.Context, token, passID string) (card.Pass, error)
	PassMembershipFunc         func(ctx context.Context, token, passID string) (*card.Membership, error)
	RequestPassAccessFunc      func(ctx context.Context, token, passID string) (card.Membership, error)
	NotificationsFunc          func(ctx context.Context, token string, includeRead bool) ([]card.Notification, error)
	MarkNotificationReadFunc   func(ctx context.Context, token, notificationID string) error

	// ProfileCalls counts Profile invocations. Useful for asserting the
	// bootstrap validation happens at most once.
	mu           sync.Mutex
	ProfileCalls int
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return session.Credentials{}, nil
}

func (m *MockBackend) BeginGoogleSignIn(ctx context.Context, returnURL, codeChallenge, codeVerifier string) (string, error) {
	if m.BeginGoogleSignInFunc != nil {
		return m.BeginGoogleSignInFunc(ctx, returnURL, codeChallenge, codeVerifier)
	}
	return "", nil
}

func (m *MockBackend) ExchangeGoogleCode(ctx context.Context, code, redirectURI string) (session.Credentials, error) {
	if m.ExchangeGoogleCodeFunc != nil {
		return m.ExchangeGoogleCodeFunc(ctx, code, redirectURI)
	}
	return session.Credentials{}, nil
}

func (m *MockBackend) LoginWithGoogleIDToken(ctx context.Context, idToken string) (session.Credentials, error) {
	if m.LoginWithGoogleIDTokenFunc != nil {
		return m.LoginWithGoogleIDTokenFunc(ctx, idToken)
	}
	return session.Credentials{}, nil
}

func (m *MockBackend) LoginWithApple(ctx context.Context, identityToken string) (session.Credentials, error) {
	if m.LoginWithAppleFunc != nil {
		return m.LoginWithAppleFunc(ctx, identityToken)
	}
	return session.Credentials{}, nil
}

func (m *MockBackend) Profile(ctx context.Context, token string) (card.Profile, error) {
	m.mu.Lock()
	m.ProfileCalls++
	m.mu.Unlock()
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, token)
	}
	return card.Profile{}, nil
}

func (m *MockBackend) UpdateProfile(ctx context.Context, token string, updates map[string]any) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, token, updates)
	}
	return nil
}

func (m *MockBackend) Passes(ctx context.Context, token string) (card.PassList, error) {
	if m.PassesFunc != nil {
		return m.PassesFunc(ctx, token)
	}
	return card.PassList{}, nil
}

func (m *MockBackend) Pass(ctx context.Context, token, passID string) (card.Pass, error) {
	if m.PassFunc != nil {
		return m.PassFunc(ctx, token, passID)
	}
	return card.Pass{}, nil
}

func (m *MockBackend) PassMembership(ctx context.Context, token, passID string) (*card.Membership, error) {
	if m.PassMembershipFunc != nil {
		return m.PassMembershipFunc(ctx, token, passID)
	}
	return nil, nil
}

func (m *MockBackend) RequestPassAccess(ctx context.Context, token, passID string) (card.Membership, error) {
	if m.RequestPassAccessFunc != nil {
		return m.RequestPassAccessFunc(ctx, token, passID)
	}
	return card.Membership{}, nil
}

func (m *MockBackend) Notifications(ctx context.Context, token string, includeRead bool) ([]card.Notification, error) {
	if m.NotificationsFunc != nil {
		return m.NotificationsFunc(ctx, token, includeRead)
	}
	return nil, nil
}

func (m *MockBackend) MarkNotificationRead(ctx context.Context, token, notificationID string) error {
	if m.MarkNotificationReadFunc != nil {
		return m.MarkNotificationReadFunc(ctx, token, notificationID)
	}
	return nil
}

// MemoryTokenStore is an in-memory TokenStore with optional fault
// injection per operation.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string

	LoadErr   error
	SaveErr   error
	DeleteErr error

	SaveCalls   int
	DeleteCalls int
}

// NewMemoryTokenStore creates an empty store, optionally pre-seeded.
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteCalls++
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.token = ""
	return nil
}

// Token reads the stored token without going through the port.
func (s *MemoryTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
