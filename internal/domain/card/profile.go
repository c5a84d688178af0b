package card

// Package card contains domain types for profiles, business-card themes,
// passes, and notifications as served by the backend mobile API.

import (
	"encoding/json"
	"strings"
)

// Profile is the backend profile record behind the business card.
//
// The backend occasionally grows fields the client does not know about;
// those are retained in Extra so a PATCH round-trip through the client
// cannot silently drop them.
type Profile struct {
	ID         string `json:"_id,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName,omitempty"`
	Name       string `json:"name"`
	UserEmail  string `json:"userEmail"`
	ShortURL   string `json:"shorturl,omitempty"`

	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	CompanyLogo string `json:"companyLogo,omitempty"`
	Photo       string `json:"photo,omitempty"`

	WorkEmail     string `json:"workEmail,omitempty"`
	PersonalEmail string `json:"personalEmail,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	WorkPhone     string `json:"workPhone,omitempty"`
	HomePhone     string `json:"homePhone,omitempty"`

	WorkStreet  string `json:"workStreet,omitempty"`
	WorkCity    string `json:"workCity,omitempty"`
	WorkState   string `json:"workState,omitempty"`
	WorkZipcode string `json:"workZipcode,omitempty"`
	WorkCountry string `json:"workCountry,omitempty"`

	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`

	// AdminOwnerID is set when the profile was created by an admin. The
	// subject user can view and share it but must not be offered edit
	// affordances. Wire name kept from the backend.
	AdminOwnerID string `json:"createdByAdminId,omitempty"`

	// Extra holds backend fields this client does not model.
	Extra map[string]any `json:"-"`
}

// profileAlias avoids UnmarshalJSON recursion.
type profileAlias Profile

// knownProfileFields lists the JSON keys bound to struct fields above.
var knownProfileFields = map[string]struct{}{
	"_id": {}, "firstName": {}, "lastName": {}, "middleName": {}, "name": {},
	"userEmail": {}, "shorturl": {}, "title": {}, "company": {},
	"companyLogo": {}, "photo": {}, "workEmail": {}, "personalEmail": {},
	"mobile": {}, "workPhone": {}, "homePhone": {}, "workStreet": {},
	"workCity": {}, "workState": {}, "workZipcode": {}, "workCountry": {},
	"website": {}, "linkedin": {}, "createdByAdminId": {},
}

// UnmarshalJSON decodes the known fields and captures the rest in Extra.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var alias profileAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range knownProfileFields {
		delete(raw, key)
	}
	delete(raw, "error")
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*p = Profile(alias)
	return nil
}

// IsAdminManaged reports whether the profile is read-only to its subject.
func (p Profile) IsAdminManaged() bool {
	return p.AdminOwnerID != ""
}

// FullName prefers the structured name parts and falls back to the single
// display-name field.
func (p Profile) FullName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return p.Name
}

// Initial returns the uppercase first letter of the full name, used for the
// photo placeholder block.
func (p Profile) Initial() string {
	name := p.FullName()
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1])
}

// WorkAddress joins the present work address parts with commas.
func (p Profile) WorkAddress() string {
	parts := make([]string, 0, 5)
	for _, v := range []string{p.WorkStreet, p.WorkCity, p.WorkState, p.WorkZipcode, p.WorkCountry} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// SplitName derives (first, last) name parts, falling back to splitting the
// display name on whitespace: first token is the first name, the remainder
// joined is the last name.
func (p Profile) SplitName() (first, last string) {
	first = p.FirstName
	last = p.LastName
	if first != "" || last != "" {
		if first == "" || last == "" {
			df, dl := splitDisplayName(p.Name)
			if first == "" {
				first = df
			}
			if last == "" {
				last = dl
			}
		}
		return first, last
	}
	return splitDisplayName(p.Name)
}

func splitDisplayName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
