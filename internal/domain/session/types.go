package session

// Package session contains domain-level types for the client session
// lifecycle. It is pure and free of transport/storage concerns.

// Status is the terminal-state label of the session state machine.
type Status string

const (
	// StatusUninitialized is the pre-bootstrap state. No storage read has
	// happened yet.
	StatusUninitialized Status = "uninitialized"
	// StatusValidating means a persisted token was found and is being
	// checked against the backend.
	StatusValidating Status = "validating"
	// StatusAuthenticated means the token was accepted and the user record
	// came from a successful backend fetch.
	StatusAuthenticated Status = "authenticated"
	// StatusUnauthenticated means no token is held; storage is empty.
	StatusUnauthenticated Status = "unauthenticated"
	// StatusDegradedAuthenticated means a token is held but the backend was
	// unreachable, so the user identity was approximated by decoding the
	// token locally (and may be absent entirely).
	StatusDegradedAuthenticated Status = "degraded_authenticated"
)

// Terminal reports whether the status is a stable resting state.
func (s Status) Terminal() bool {
	switch s {
	case StatusAuthenticated, StatusUnauthenticated, StatusDegradedAuthenticated:
		return true
	case StatusUninitialized, StatusValidating:
		return false
	}
	return false
}

// SignedIn reports whether a token is held in this status.
func (s Status) SignedIn() bool {
	return s == StatusAuthenticated || s == StatusDegradedAuthenticated
}

// User is the identity attached to a session. It comes from a backend
// profile fetch, or from local token decoding on the degraded path.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	ImageURL    string `json:"image,omitempty"`
}

// Credentials is a (token, user) pair issued by a sign-in endpoint.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Snapshot is a consistent read of the session state. User is nil unless
// SignedIn; on the degraded path it may be nil even with a token held.
type Snapshot struct {
	Token  string `json:"-"`
	User   *User  `json:"user,omitempty"`
	Status Status `json:"status"`
}
