package api

import (
	"context"
	"net/http"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Profile fetches the caller's profile. A 401 surfaces as an authorization
// error with the backend's message so the session layer can discard the
// token; everything transport-shaped stays a network error so it does not.
func (c *Client) Profile(ctx context.Context, token string) (card.Profile, error) {
	res, err := c.getJSON(ctx, "/api/mobile/profile", token)
	if err != nil {
		return card.Profile{}, err
	}

	if res.StatusCode != http.StatusOK {
		var envelope errorEnvelope
		if err := decodeJSON(res, &envelope); err != nil {
			// Empty or garbage body on an auth status still means the
			// backend answered; classify by status, not by body shape.
			if res.StatusCode == http.StatusUnauthorized {
				return card.Profile{}, apperrors.Unauthorized("Unauthorized")
			}
			return card.Profile{}, err
		}
		return card.Profile{}, statusError(res.StatusCode, envelope.message("Failed to load profile"))
	}

	var profile card.Profile
	if err := decodeJSON(res, &profile); err != nil {
		return card.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile applies a partial update. The admin-managed guard is a UX
// affordance in the CLI layer; this call always reaches the backend.
func (c *Client) UpdateProfile(ctx context.Context, token string, updates map[string]any) error {
	res, err := c.sendJSON(ctx, http.MethodPatch, "/api/mobile/profile", token, updates)
	if err != nil {
		return err
	}

	var envelope errorEnvelope
	if err := decodeJSON(res, &envelope); err != nil {
		// A 2xx with an empty body is fine for a PATCH.
		if res.StatusCode >= 200 && res.StatusCode < 300 && apperrors.IsMalformedResponse(err) {
			return nil
		}
		return err
	}
	if res.StatusCode != http.StatusOK {
		return statusError(res.StatusCode, envelope.message("Failed to update profile"))
	}
	return nil
}
