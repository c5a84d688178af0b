// Package testutil provides testing utilities and helpers for the client.
package testutil

import (
	"github.com/smartwave/smartwave-go/internal/domain/card"
)

// ProfileBuilder provides a fluent interface for building Profile objects
// for testing.
type ProfileBuilder struct {
	p card.Profile
}

// NewProfile creates a ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		p: card.Profile{
			ID:        "prof-1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Name:      "Ada Lovelace",
			UserEmail: "ada@example.com",
			Title:     "Analyst",
			Company:   "Analytical Engines Ltd",
			ShortURL:  "https://sw.example/ada",
		},
	}
}

// WithName sets the structured name parts and the display name.
func (b *ProfileBuilder) WithName(first, last string) *ProfileBuilder {
	b.p.FirstName = first
	b.p.LastName = last
	b.p.Name = first + " " + last
	return b
}

// WithDisplayNameOnly clears the structured parts, leaving only the
// single display-name field.
func (b *ProfileBuilder) WithDisplayNameOnly(name string) *ProfileBuilder {
	b.p.FirstName = ""
	b.p.LastName = ""
	b.p.Name = name
	return b
}

// WithPhoto sets the remote photo URL.
func (b *ProfileBuilder) WithPhoto(url string) *ProfileBuilder {
	b.p.Photo = url
	return b
}

// WithCompanyLogo sets the remote company-logo URL.
func (b *ProfileBuilder) WithCompanyLogo(url string) *ProfileBuilder {
	b.p.CompanyLogo = url
	return b
}

// WithAdminOwner marks the profile admin-managed.
func (b *ProfileBuilder) WithAdminOwner(adminID string) *ProfileBuilder {
	b.p.AdminOwnerID = adminID
	return b
}

// WithContact sets the common contact fields.
func (b *ProfileBuilder) WithContact(workEmail, mobile, website string) *ProfileBuilder {
	b.p.WorkEmail = workEmail
	b.p.Mobile = mobile
	b.p.Website = website
	return b
}

// Build returns the profile.
func (b *ProfileBuilder) Build() card.Profile {
	return b.p
}
