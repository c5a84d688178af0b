package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Notifications lists the user's notifications, optionally including
// already-read ones.
func (c *Client) Notifications(ctx context.Context, token string, includeRead bool) ([]card.Notification, error) {
	path := "/api/mobile/notifications"
	if !includeRead {
		path += "?includeRead=false"
	}

	res, err := c.getJSON(ctx, path, token)
	if err != nil {
		return nil, err
	}

	var data struct {
		Notifications []card.Notification `json:"notifications"`
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, statusError(res.StatusCode, data.message("Failed to load notifications"))
	}
	return data.Notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, token, notificationID string) error {
	path := "/api/mobile/notifications/" + url.PathEscape(notificationID) + "/read"
	res, err := c.sendJSON(ctx, http.MethodPost, path, token, nil)
	if err != nil {
		return err
	}

	var envelope errorEnvelope
	if err := decodeJSON(res, &envelope); err != nil {
		if res.StatusCode >= 200 && res.StatusCode < 300 && apperrors.IsMalformedResponse(err) {
			return nil
		}
		return err
	}
	if res.StatusCode != http.StatusOK {
		return statusError(res.StatusCode, envelope.message("Failed to mark notification read"))
	}
	return nil
}
