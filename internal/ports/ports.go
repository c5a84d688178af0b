package ports

// Package ports defines interfaces (hexagonal ports) for the client's
// external collaborators: the backend REST API, the secure token store, the
// QR rasterizer, and the platform media/share surfaces. Implementations
// live in internal/api and internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"image"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	"github.com/smartwave/smartwave-go/internal/domain/session"
)

// Backend is the typed surface of the remote mobile API. All calls are
// subject to the client-wide request timeout; transport failures are
// classified by the implementation into the AppError taxonomy.
type Backend interface {
	// Login exchanges email/password credentials for a token and user.
	Login(ctx context.Context, email, password string) (session.Credentials, error)

	// BeginGoogleSignIn asks the backend for the provider auth URL. After
	// the user signs in there, the backend redirects to returnURL?token=JWT.
	BeginGoogleSignIn(ctx context.Context, returnURL, codeChallenge, codeVerifier string) (authURL string, err error)

	// ExchangeGoogleCode completes the in-app code flow.
	ExchangeGoogleCode(ctx context.Context, code, redirectURI string) (session.Credentials, error)

	// LoginWithGoogleIDToken signs in with a Google-issued ID token.
	LoginWithGoogleIDToken(ctx context.Context, idToken string) (session.Credentials, error)

	// LoginWithApple signs in with an Apple identity token.
	LoginWithApple(ctx context.Context, identityToken string) (session.Credentials, error)

	// Profile fetches the caller's profile. A 401 is surfaced as an
	// authorization error, everything transport-shaped as a network error.
	Profile(ctx context.Context, token string) (card.Profile, error)

	// UpdateProfile applies a partial update. The backend enforces
	// admin-managed read-only profiles; the client only hides affordances.
	UpdateProfile(ctx context.Context, token string, updates map[string]any) error

	Passes(ctx context.Context, token string) (card.PassList, error)
	Pass(ctx context.Context, token, passID string) (card.Pass, error)
	PassMembership(ctx context.Context, token, passID string) (*card.Membership, error)
	RequestPassAccess(ctx context.Context, token, passID string) (card.Membership, error)

	Notifications(ctx context.Context, token string, includeRead bool) ([]card.Notification, error)
	MarkNotificationRead(ctx context.Context, token, notificationID string) error
}

// TokenStore persists the single bearer-token entry. Load returns an empty
// string (and nil error) when no token is stored. Implementations are
// platform secure storage with a plain-file fallback.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// QREncoder rasterizes text to a PNG byte buffer at the given pixel size.
type QREncoder interface {
	EncodePNG(text string, size int) ([]byte, error)
}

// ImageFetcher resolves a remote image URL into a decoded image, bounded by
// the context deadline. Used to prefetch profile photo and company logo
// before a card snapshot so no half-resolved image ends up in the export.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// MediaLibrary is the photo-library sink for saved cards.
type MediaLibrary interface {
	// RequestPermission reports whether library access is granted. A false
	// result is a user decision, not an error.
	RequestPermission(ctx context.Context) (bool, error)

	// CreateAsset imports a staged file and returns the new asset ID.
	CreateAsset(ctx context.Context, stagedPath string) (string, error)

	// EnsureAlbum creates the named album if absent and places the first
	// asset in it. Idempotent.
	EnsureAlbum(ctx context.Context, name, firstAssetID string) error

	// AddToAlbum appends assets to an existing album.
	AddToAlbum(ctx context.Context, name string, assetIDs ...string) error
}

// ShareSink hands a staged file to the platform share surface.
type ShareSink interface {
	// Available reports whether the rich share surface can be used.
	Available(ctx context.Context) bool

	// Share opens the share surface for the staged file.
	Share(ctx context.Context, path, title string) error

	// ShareFallback performs a generic share action when the rich surface
	// is unavailable.
	ShareFallback(ctx context.Context, path, message string) error
}
