package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	"github.com/smartwave/smartwave-go/internal/domain/session"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/mocks"
	backendmock "github.com/smartwave/smartwave-go/internal/mocks/backend"
	"github.com/smartwave/smartwave-go/internal/testutil"
)

func newSessionService(t *testing.T, b *backendmock.MockBackend, store *backendmock.MemoryTokenStore) *SessionService {
	t.Helper()
	svc, err := NewSessionService(SessionServiceOptions{Backend: b, Store: store})
	require.NoError(t, err)
	return svc
}

func okProfileBackend() *backendmock.MockBackend {
	return &backendmock.MockBackend{
		ProfileFunc: func(_ context.Context, token string) (card.Profile, error) {
			if token == "" {
				return card.Profile{}, apperrors.Unauthorized("missing token")
			}
			return testutil.NewProfile().Build(), nil
		},
	}
}

func TestBootstrap_EmptyStoreIsUnauthenticated(t *testing.T) {
	b := okProfileBackend()
	svc := newSessionService(t, b, backendmock.NewMemoryTokenStore(""))

	snap := svc.Bootstrap(context.Background())

	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Nil(t, snap.User)
	assert.Equal(t, 0, b.ProfileCalls, "no validation without a token")
}

func TestBootstrap_ValidTokenAuthenticates(t *testing.T) {
	svc := newSessionService(t, okProfileBackend(), backendmock.NewMemoryTokenStore("tok-1"))

	snap := svc.Bootstrap(context.Background())

	assert.Equal(t, session.StatusAuthenticated, snap.Status)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ada Lovelace", snap.User.DisplayName)
	assert.Equal(t, "ada@example.com", snap.User.Email)
	assert.Equal(t, "tok-1", svc.Token())
}

func TestBootstrap_ConcurrentCallsValidateOnce(t *testing.T) {
	b := okProfileBackend()
	svc := newSessionService(t, b, backendmock.NewMemoryTokenStore("tok-1"))

	var wg sync.WaitGroup
	snaps := make([]session.Snapshot, 8)
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snaps[i] = svc.Bootstrap(context.Background())
		}(i)
	}
	wg.Wait()

	for _, snap := range snaps {
		assert.Equal(t, session.StatusAuthenticated, snap.Status)
	}
	assert.Equal(t, 1, b.ProfileCalls)

	// A later bootstrap does not re-validate the same token.
	svc.Bootstrap(context.Background())
	assert.Equal(t, 1, b.ProfileCalls)
}

func TestBootstrap_RejectedTokenClearsStorage(t *testing.T) {
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return card.Profile{}, apperrors.Unauthorized("token expired")
		},
	}
	store := backendmock.NewMemoryTokenStore("stale")
	svc := newSessionService(t, b, store)

	snap := svc.Bootstrap(context.Background())

	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Empty(t, store.Token())
	assert.Empty(t, svc.Token())
}

func TestBootstrap_NetworkFailureDegrades(t *testing.T) {
	raw := testutil.FakeJWT(map[string]any{
		"sub":   "user-7",
		"email": "deg@example.com",
		"name":  "Deg Raded",
	})
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return card.Profile{}, apperrors.Network("connection refused")
		},
	}
	store := backendmock.NewMemoryTokenStore(raw)
	svc := newSessionService(t, b, store)

	snap := svc.Bootstrap(context.Background())

	assert.Equal(t, session.StatusDegradedAuthenticated, snap.Status)
	assert.Equal(t, raw, store.Token(), "token survives a transport failure")
	require.NotNil(t, snap.User)
	assert.Equal(t, "user-7", snap.User.ID)
	assert.Equal(t, "deg@example.com", snap.User.Email)
}

func TestBootstrap_DegradedWithUndecodableToken(t *testing.T) {
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return card.Profile{}, apperrors.Network("connection refused")
		},
	}
	store := backendmock.NewMemoryTokenStore("opaque-not-a-jwt")
	svc := newSessionService(t, b, store)

	snap := svc.Bootstrap(context.Background())

	assert.Equal(t, session.StatusDegradedAuthenticated, snap.Status)
	assert.Nil(t, snap.User, "identity decode failure degrades to no user")
	assert.Equal(t, "opaque-not-a-jwt", store.Token())
}

func TestCompleteSignInWithToken_AuthorizationFailure(t *testing.T) {
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return card.Profile{}, apperrors.Unauthorized("nope")
		},
	}
	store := backendmock.NewMemoryTokenStore("")
	svc := newSessionService(t, b, store)

	snap, err := svc.CompleteSignInWithToken(context.Background(), "bad-token")

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Empty(t, store.Token())
}

func TestCompleteSignInWithToken_NetworkFailureKeepsToken(t *testing.T) {
	raw := testutil.FakeJWT(map[string]any{"id": "u-1", "email": "a@b.c"})
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return card.Profile{}, apperrors.MalformedResponse("html error page")
		},
	}
	store := backendmock.NewMemoryTokenStore("")
	svc := newSessionService(t, b, store)

	snap, err := svc.CompleteSignInWithToken(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, session.StatusDegradedAuthenticated, snap.Status)
	assert.Equal(t, raw, store.Token())
	require.NotNil(t, snap.User)
	assert.Equal(t, "u-1", snap.User.ID)
}

func TestCompleteSignInWithToken_EmptyToken(t *testing.T) {
	svc := newSessionService(t, okProfileBackend(), backendmock.NewMemoryTokenStore(""))

	_, err := svc.CompleteSignInWithToken(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompleteSignInWithToken_SameTokenIsNoop(t *testing.T) {
	b := okProfileBackend()
	store := backendmock.NewMemoryTokenStore("")
	svc := newSessionService(t, b, store)

	_, err := svc.CompleteSignInWithToken(context.Background(), "tok-1")
	require.NoError(t, err)
	calls := b.ProfileCalls

	_, err = svc.CompleteSignInWithToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, calls, b.ProfileCalls)
}

func TestSignInWithPassword(t *testing.T) {
	b := &backendmock.MockBackend{
		LoginFunc: func(_ context.Context, email, password string) (session.Credentials, error) {
			if password != "hunter2" {
				return session.Credentials{}, apperrors.InvalidCredentials("wrong password")
			}
			return session.Credentials{
				Token: "tok-pw",
				User:  session.User{ID: "u-1", Email: email, DisplayName: "Ada"},
			}, nil
		},
	}
	store := backendmock.NewMemoryTokenStore("")
	svc := newSessionService(t, b, store)

	_, err := svc.SignInWithPassword(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.Empty(t, store.Token())

	snap, err := svc.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, session.StatusAuthenticated, snap.Status)
	assert.Equal(t, "tok-pw", store.Token())
	require.NotNil(t, snap.User)
	assert.Equal(t, "u-1", snap.User.ID)
}

func TestBeginFederatedSignIn_GeneratesPKCEPair(t *testing.T) {
	var gotChallenge, gotVerifier string
	b := &backendmock.MockBackend{
		BeginGoogleSignInFunc: func(_ context.Context, returnURL, challenge, verifier string) (string, error) {
			gotChallenge = challenge
			gotVerifier = verifier
			return "https://idp.example/auth?return=" + returnURL, nil
		},
	}
	svc := newSessionService(t, b, backendmock.NewMemoryTokenStore(""))

	flow, err := svc.BeginFederatedSignIn(context.Background(), "smartwave://redirect")
	require.NoError(t, err)

	assert.NotEmpty(t, flow.AuthURL)
	assert.Equal(t, "smartwave://redirect", flow.ReturnURL)
	assert.Equal(t, gotVerifier, flow.Verifier)
	assert.NotEmpty(t, gotChallenge)
	assert.NotEqual(t, gotVerifier, gotChallenge, "challenge must be derived, not the raw verifier")
}

func TestSignInWithIdentityToken(t *testing.T) {
	b := &backendmock.MockBackend{
		LoginWithGoogleIDTokenFunc: func(context.Context, string) (session.Credentials, error) {
			return session.Credentials{Token: "tok-g", User: session.User{ID: "g-1"}}, nil
		},
		LoginWithAppleFunc: func(context.Context, string) (session.Credentials, error) {
			return session.Credentials{Token: "tok-a", User: session.User{ID: "a-1"}}, nil
		},
	}
	store := backendmock.NewMemoryTokenStore("")
	svc := newSessionService(t, b, store)

	snap, err := svc.SignInWithIdentityToken(context.Background(), "google", "idt")
	require.NoError(t, err)
	assert.Equal(t, "g-1", snap.User.ID)

	snap, err = svc.SignInWithIdentityToken(context.Background(), "apple", "idt")
	require.NoError(t, err)
	assert.Equal(t, "a-1", snap.User.ID)
	assert.Equal(t, "tok-a", store.Token())

	_, err = svc.SignInWithIdentityToken(context.Background(), "facebook", "idt")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSignOut_IsReentrant(t *testing.T) {
	store := backendmock.NewMemoryTokenStore("tok-1")
	svc := newSessionService(t, okProfileBackend(), store)
	svc.Bootstrap(context.Background())

	snap := svc.SignOut(context.Background())
	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Empty(t, store.Token())

	snap = svc.SignOut(context.Background())
	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
}

func TestSignOut_ConcurrentCallsSettle(t *testing.T) {
	store := backendmock.NewMemoryTokenStore("tok-1")
	svc := newSessionService(t, okProfileBackend(), store)
	svc.Bootstrap(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.SignOut(context.Background())
		}()
	}
	wg.Wait()

	snap := svc.Snapshot()
	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Nil(t, snap.User)
	assert.Empty(t, store.Token())
}

func TestSignOut_StorageFailureStillClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().Delete(gomock.Any()).Return(apperrors.Internal("keyring locked"))

	svc, err := NewSessionService(SessionServiceOptions{Backend: okProfileBackend(), Store: store})
	require.NoError(t, err)

	snap := svc.SignOut(context.Background())
	assert.Equal(t, session.StatusUnauthenticated, snap.Status)
	assert.Empty(t, svc.Token())
}

func TestCompleteSignInWithToken_PersistFailureStillSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().Save(gomock.Any(), "tok-1").Return(apperrors.Internal("disk full"))

	svc, err := NewSessionService(SessionServiceOptions{Backend: okProfileBackend(), Store: store})
	require.NoError(t, err)

	snap, err := svc.CompleteSignInWithToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, session.StatusAuthenticated, snap.Status)
}

func TestDecodeTokenUser(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  *session.User
	}{
		{
			name:  "full claims",
			token: testutil.FakeJWT(map[string]any{"id": "u-1", "email": "a@b.c", "name": "Ada", "picture": "https://img"}),
			want:  &session.User{ID: "u-1", Email: "a@b.c", DisplayName: "Ada", ImageURL: "https://img"},
		},
		{
			name:  "sub fallback",
			token: testutil.FakeJWT(map[string]any{"sub": "u-2"}),
			want:  &session.User{ID: "u-2"},
		},
		{
			name:  "not a jwt",
			token: "garbage",
			want:  nil,
		},
		{
			name:  "no identity claims",
			token: testutil.FakeJWT(map[string]any{"iat": 1700000000}),
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeTokenUser(tt.token))
		})
	}
}
