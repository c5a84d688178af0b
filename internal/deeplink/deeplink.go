package deeplink

// Package deeplink extracts the sign-in token from an auth redirect URL.
//
// This is a security boundary: only the `token` query parameter is read.
// The redirect URL can also carry `state`, `code`, and provider-issued
// tokens from the upstream OAuth exchange; none of those are ours to
// consume, and processing them would open token confusion between the
// provider credential and the backend-issued JWT.

import (
	"net/url"
	"regexp"
	"strings"
)

// tokenParamPattern pulls token=value out of a raw string, stopping at the
// next &, ? or #. Used when standard URL parsing fails (custom app schemes
// are not always well-formed). The left boundary excludes identifier
// characters so id_token= and access_token= never match.
var tokenParamPattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9_])token=([^&?#]+)`)

// ExtractToken returns the value of the token query parameter, or empty
// string when the URL carries none.
func ExtractToken(raw string) string {
	if raw == "" || !strings.Contains(raw, "token=") {
		return ""
	}

	if parsed, err := url.Parse(raw); err == nil {
		if token := strings.TrimSpace(parsed.Query().Get("token")); token != "" {
			return token
		}
	}

	// Fallback for URLs the standard parser rejects or mangles.
	if m := tokenParamPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
