package card

import "time"

// PassType distinguishes event passes from access (door/area) passes.
type PassType string

const (
	PassTypeEvent  PassType = "event"
	PassTypeAccess PassType = "access"
)

// PassStatus is the backend publication state of a pass.
type PassStatus string

const (
	PassStatusDraft  PassStatus = "draft"
	PassStatusActive PassStatus = "active"
)

// MembershipStatus is the per-user approval state for a pass. A user holds
// at most one membership record per pass.
type MembershipStatus string

const (
	MembershipNone     MembershipStatus = ""
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

// Pass is a backend-managed event or access permission record.
type Pass struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Type        PassType         `json:"type"`
	Status      PassStatus       `json:"status"`
	// MembershipStatus is the requesting user's state on this pass when the
	// listing endpoint inlines it.
	MembershipStatus MembershipStatus `json:"membershipStatus,omitempty"`
}

// Membership is the user's join record for a pass.
type Membership struct {
	ID     string           `json:"_id"`
	PassID string           `json:"passId"`
	Status MembershipStatus `json:"status"`
}

// PassList is the pass listing response, split into company-scoped and
// public passes.
type PassList struct {
	Passes          []Pass `json:"passes"`
	CorporatePasses []Pass `json:"corporatePasses,omitempty"`
}

// Notification is a backend message for the user. Body may contain HTML.
type Notification struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`

	// PlainBody is Body with HTML stripped, filled in by the client for
	// display. Not part of the wire format.
	PlainBody string `json:"-"`
}
