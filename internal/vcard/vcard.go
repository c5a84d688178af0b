// Package vcard serializes a profile to the vCard 3.0 text block embedded
// in the card's QR code. Field order is fixed and lines with empty values
// are omitted entirely, so the output is deterministic for a given profile.
package vcard

import (
	"fmt"
	"strings"

	"github.com/smartwave/smartwave-go/internal/domain/card"
)

// Marshal renders the profile as a vCard 3.0 text block.
func Marshal(p card.Profile) string {
	first, last := p.SplitName()

	lines := make([]string, 0, 13)
	lines = append(lines,
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("FN:%s", p.Name),
		fmt.Sprintf("N:%s;%s;%s;;", last, first, p.MiddleName),
	)
	appendIfSet(&lines, "TITLE:%s", p.Title)
	appendIfSet(&lines, "ORG:%s", p.Company)
	appendIfSet(&lines, "EMAIL;type=WORK:%s", p.WorkEmail)
	appendIfSet(&lines, "EMAIL;type=HOME:%s", p.PersonalEmail)
	appendIfSet(&lines, "TEL;type=WORK:%s", p.WorkPhone)
	appendIfSet(&lines, "TEL;type=CELL:%s", p.Mobile)
	appendIfSet(&lines, "TEL;type=HOME:%s", p.HomePhone)
	appendIfSet(&lines, "URL:%s", p.Website)
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

func appendIfSet(lines *[]string, format, value string) {
	if value == "" {
		return
	}
	*lines = append(*lines, fmt.Sprintf(format, value))
}
