package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/smartwave/smartwave-go/internal/domain/card"
)

// Passes lists the passes visible to the user, split into corporate and
// public sections by the backend.
func (c *Client) Passes(ctx context.Context, token string) (card.PassList, error) {
	res, err := c.getJSON(ctx, "/api/mobile/passes", token)
	if err != nil {
		return card.PassList{}, err
	}

	var data struct {
		card.PassList
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return card.PassList{}, err
	}
	if res.StatusCode != http.StatusOK {
		return card.PassList{}, statusError(res.StatusCode, data.message("Failed to load passes"))
	}
	return data.PassList, nil
}

// Pass fetches a single pass.
func (c *Client) Pass(ctx context.Context, token, passID string) (card.Pass, error) {
	res, err := c.getJSON(ctx, "/api/mobile/passes/"+url.PathEscape(passID), token)
	if err != nil {
		return card.Pass{}, err
	}

	var data struct {
		Pass card.Pass `json:"pass"`
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return card.Pass{}, err
	}
	if res.StatusCode != http.StatusOK {
		return card.Pass{}, statusError(res.StatusCode, data.message("Failed to load pass"))
	}
	return data.Pass, nil
}

// PassMembership fetches the caller's membership record for a pass, or nil
// when none exists yet.
func (c *Client) PassMembership(ctx context.Context, token, passID string) (*card.Membership, error) {
	res, err := c.getJSON(ctx, "/api/mobile/passes/"+url.PathEscape(passID)+"/membership", token)
	if err != nil {
		return nil, err
	}

	var data struct {
		Membership *card.Membership `json:"membership"`
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, statusError(res.StatusCode, data.message("Failed to load membership"))
	}
	return data.Membership, nil
}

// RequestPassAccess asks to join a pass. The backend creates (at most) one
// membership record per user per pass; a repeat request returns the
// existing record.
func (c *Client) RequestPassAccess(ctx context.Context, token, passID string) (card.Membership, error) {
	res, err := c.sendJSON(ctx, http.MethodPost, "/api/mobile/passes/"+url.PathEscape(passID)+"/join", token, nil)
	if err != nil {
		return card.Membership{}, err
	}

	var data struct {
		Membership card.Membership `json:"membership"`
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return card.Membership{}, err
	}
	if res.StatusCode != http.StatusOK {
		return card.Membership{}, statusError(res.StatusCode, data.message("Failed to request access"))
	}
	return data.Membership, nil
}

// WalletURL builds the Apple/Google wallet download URL for a pass. The
// token rides as a query parameter because wallet handoffs cannot attach
// headers.
func (c *Client) WalletURL(kind, shortURL, token string) string {
	path := "/api/wallet/apple"
	if kind == "google" {
		path = "/api/wallet/google"
	}
	q := url.Values{}
	q.Set("shorturl", shortURL)
	if token != "" {
		q.Set("token", token)
	}
	return c.baseURL + path + "?" + q.Encode()
}
