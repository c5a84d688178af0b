package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/smartwave/smartwave-go/internal/domain/session"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/observability/metrics"
	"github.com/smartwave/smartwave-go/internal/observability/statsd"
	"github.com/smartwave/smartwave-go/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
//
// Backend and Store are required; Logger and Metrics are optional.
type SessionServiceOptions struct {
	Backend ports.Backend    // Required: remote API
	Store   ports.TokenStore // Required: persisted token entry
	Logger  *slog.Logger     // Optional: structured logger
	Metrics statsd.Sink      // Optional: transition counters
}

// SessionService owns the session lifecycle: restoring a persisted token
// at startup, validating it against the backend, the sign-in flows, and
// sign-out.
//
// State moves between Uninitialized, Validating, Authenticated,
// Unauthenticated and DegradedAuthenticated. The degraded state means a
// token is held but the backend could not confirm it; the user identity is
// then approximated by decoding the token locally and may be absent.
type SessionService struct {
	backend ports.Backend
	store   ports.TokenStore
	logger  *slog.Logger
	metrics statsd.Sink

	// boot collapses concurrent Bootstrap calls into one validation.
	boot singleflight.Group

	// storeMu serializes writes to the token store so a sign-out racing a
	// sign-in cannot interleave delete/save.
	storeMu sync.Mutex

	mu             sync.Mutex
	status         session.Status
	token          string
	user           *session.User
	validatedToken string
}

// NewSessionService constructs a SessionService in the Uninitialized state.
func NewSessionService(opts SessionServiceOptions) (*SessionService, error) {
	if opts.Backend == nil {
		return nil, errors.New("Backend is required")
	}
	if opts.Store == nil {
		return nil, errors.New("TokenStore is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SessionService{
		backend: opts.Backend,
		store:   opts.Store,
		logger:  logger,
		metrics: opts.Metrics,
		status:  session.StatusUninitialized,
	}, nil
}

// Snapshot returns a consistent read of the current session state.
func (s *SessionService) Snapshot() session.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Token returns the held bearer token, empty when signed out.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionService) snapshotLocked() session.Snapshot {
	return session.Snapshot{Token: s.token, User: s.user, Status: s.status}
}

// Bootstrap restores the persisted session. It never returns an error: a
// terminal status is always reached, degrading instead of failing when the
// backend is unreachable. Concurrent calls share one validation, and a
// token that already completed validation is not validated again.
func (s *SessionService) Bootstrap(ctx context.Context) session.Snapshot {
	result, _, _ := s.boot.Do("bootstrap", func() (any, error) {
		return s.bootstrapOnce(ctx), nil
	})
	return result.(session.Snapshot)
}

func (s *SessionService) bootstrapOnce(ctx context.Context) session.Snapshot {
	s.mu.Lock()
	if s.status.Terminal() {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.mu.Unlock()

	token, err := s.store.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "token store read failed", "error", err)
		token = ""
	}
	if token == "" {
		s.transition(session.StatusUnauthenticated, "", nil)
		metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
			Operation: "bootstrap",
			Status:    string(session.StatusUnauthenticated),
		})
		return s.Snapshot()
	}

	s.mu.Lock()
	if s.validatedToken == token && s.status.Terminal() {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.token = token
	s.status = session.StatusValidating
	s.mu.Unlock()

	snap, err := s.resolve(ctx, token)
	metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
		Operation: "bootstrap",
		Status:    string(snap.Status),
		Err:       err,
	})
	return snap
}

// CompleteSignInWithToken accepts a raw token obtained out of band (the
// federated redirect deep link) and runs it through validation. An
// authorization rejection discards the token and returns the error; a
// transport failure keeps the token and degrades instead.
func (s *SessionService) CompleteSignInWithToken(ctx context.Context, raw string) (session.Snapshot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.Snapshot(), apperrors.Validation("token must not be empty")
	}

	s.mu.Lock()
	if s.validatedToken == raw && s.status.Terminal() && s.status.SignedIn() {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	if err := s.saveToken(ctx, raw); err != nil {
		// The in-memory session still works for this run.
		s.logger.WarnContext(ctx, "token persist failed", "error", err)
	}

	s.mu.Lock()
	s.token = raw
	s.user = nil
	s.status = session.StatusValidating
	s.validatedToken = ""
	s.mu.Unlock()

	snap, err := s.resolve(ctx, raw)
	metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
		Operation: "complete_sign_in",
		Status:    string(snap.Status),
		Err:       err,
	})
	return snap, err
}

// resolve validates token by fetching the profile and lands the session in
// a terminal state. The returned error is non-nil only for authorization
// rejections; transport problems degrade silently.
func (s *SessionService) resolve(ctx context.Context, token string) (session.Snapshot, error) {
	profile, err := s.backend.Profile(ctx, token)
	switch {
	case err == nil:
		user := &session.User{
			ID:          profile.ID,
			Email:       profile.UserEmail,
			DisplayName: profile.FullName(),
			ImageURL:    profile.Photo,
		}
		s.transition(session.StatusAuthenticated, token, user)
		s.markValidated(token)
		return s.Snapshot(), nil

	case apperrors.IsUnauthorized(err):
		// The token is dead: forget it everywhere.
		if derr := s.deleteToken(ctx); derr != nil {
			s.logger.WarnContext(ctx, "token store clear failed", "error", derr)
		}
		s.transition(session.StatusUnauthenticated, "", nil)
		s.markValidated(token)
		s.logger.InfoContext(ctx, "session token rejected", "status", session.StatusUnauthenticated)
		return s.Snapshot(), err

	default:
		// Network, malformed response, cancellation: keep the token and
		// approximate the identity from its payload.
		user := decodeTokenUser(token)
		s.transition(session.StatusDegradedAuthenticated, token, user)
		s.markValidated(token)
		s.logger.WarnContext(ctx, "session validation degraded",
			"error", err,
			"identity_recovered", user != nil)
		return s.Snapshot(), nil
	}
}

// SignInWithPassword exchanges email/password credentials for a session.
func (s *SessionService) SignInWithPassword(ctx context.Context, email, password string) (session.Snapshot, error) {
	creds, err := s.backend.Login(ctx, email, password)
	if err != nil {
		metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
			Operation: "password_sign_in",
			Status:    string(s.Snapshot().Status),
			Err:       err,
		})
		return s.Snapshot(), err
	}
	return s.applyCredentials(ctx, "password_sign_in", creds)
}

// FederatedSignIn describes an in-flight federated flow: direct the user
// to AuthURL, then complete with the token from the redirect deep link.
type FederatedSignIn struct {
	AuthURL   string
	ReturnURL string
	// Verifier is the PKCE code verifier for the in-app code variant.
	Verifier string
}

// BeginFederatedSignIn asks the backend for the provider auth URL,
// attaching a fresh PKCE verifier/challenge pair.
func (s *SessionService) BeginFederatedSignIn(ctx context.Context, returnURL string) (FederatedSignIn, error) {
	verifier := oauth2.GenerateVerifier()
	challenge := oauth2.S256ChallengeFromVerifier(verifier)

	authURL, err := s.backend.BeginGoogleSignIn(ctx, returnURL, challenge, verifier)
	if err != nil {
		return FederatedSignIn{}, err
	}
	return FederatedSignIn{AuthURL: authURL, ReturnURL: returnURL, Verifier: verifier}, nil
}

// SignInWithFederatedCode completes the in-app authorization-code variant.
func (s *SessionService) SignInWithFederatedCode(ctx context.Context, code, redirectURI string) (session.Snapshot, error) {
	creds, err := s.backend.ExchangeGoogleCode(ctx, code, redirectURI)
	if err != nil {
		return s.Snapshot(), err
	}
	return s.applyCredentials(ctx, "federated_sign_in", creds)
}

// SignInWithIdentityToken signs in with a provider-issued identity token.
// provider is "google" or "apple".
func (s *SessionService) SignInWithIdentityToken(ctx context.Context, provider, idToken string) (session.Snapshot, error) {
	var (
		creds session.Credentials
		err   error
	)
	switch provider {
	case "google":
		creds, err = s.backend.LoginWithGoogleIDToken(ctx, idToken)
	case "apple":
		creds, err = s.backend.LoginWithApple(ctx, idToken)
	default:
		return s.Snapshot(), apperrors.Validation("unknown identity provider " + provider)
	}
	if err != nil {
		return s.Snapshot(), err
	}
	return s.applyCredentials(ctx, "federated_sign_in", creds)
}

func (s *SessionService) applyCredentials(ctx context.Context, operation string, creds session.Credentials) (session.Snapshot, error) {
	if strings.TrimSpace(creds.Token) == "" {
		return s.Snapshot(), apperrors.MalformedResponse("sign-in response carried no token")
	}

	if err := s.saveToken(ctx, creds.Token); err != nil {
		s.logger.WarnContext(ctx, "token persist failed", "error", err)
	}

	user := creds.User
	s.transition(session.StatusAuthenticated, creds.Token, &user)
	s.markValidated(creds.Token)

	metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
		Operation: operation,
		Status:    string(session.StatusAuthenticated),
	})
	s.logger.InfoContext(ctx, "signed in", "user_id", user.ID)
	return s.Snapshot(), nil
}

// SignOut clears the session. It is reentrant and concurrent-safe: storage
// failures are logged and swallowed, and the in-memory state always ends
// up Unauthenticated.
func (s *SessionService) SignOut(ctx context.Context) session.Snapshot {
	if err := s.deleteToken(ctx); err != nil {
		s.logger.WarnContext(ctx, "token store clear failed", "error", err)
	}

	s.mu.Lock()
	alreadyOut := s.status == session.StatusUnauthenticated
	s.token = ""
	s.user = nil
	s.status = session.StatusUnauthenticated
	s.validatedToken = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	result := metrics.ResultSuccess
	if alreadyOut {
		result = metrics.ResultNoop
	}
	metrics.EmitSessionTransition(s.metrics, metrics.SessionTransition{
		Operation: "sign_out",
		Status:    string(session.StatusUnauthenticated),
	})
	s.logger.InfoContext(ctx, "signed out", "result", result)
	return snap
}

func (s *SessionService) transition(status session.Status, token string, user *session.User) {
	s.mu.Lock()
	s.status = status
	s.token = token
	s.user = user
	s.mu.Unlock()
}

func (s *SessionService) markValidated(token string) {
	s.mu.Lock()
	s.validatedToken = token
	s.mu.Unlock()
}

func (s *SessionService) saveToken(ctx context.Context, token string) error {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()
	return s.store.Save(ctx, token)
}

func (s *SessionService) deleteToken(ctx context.Context) error {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()
	return s.store.Delete(ctx)
}

// decodeTokenUser approximates the identity from the token payload without
// verifying the signature. Any decode failure yields nil: the degraded
// session then simply has no user attached.
func decodeTokenUser(raw string) *session.User {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil
	}

	user := &session.User{
		ID:          claimString(claims, "id"),
		Email:       claimString(claims, "email"),
		DisplayName: claimString(claims, "name"),
		ImageURL:    claimString(claims, "picture"),
	}
	if user.ID == "" {
		user.ID = claimString(claims, "sub")
	}
	if user.ID == "" && user.Email == "" && user.DisplayName == "" {
		return nil
	}
	return user
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
