package api

// Package api implements the typed HTTP client for the backend mobile API.
// It is the only place that knows URL paths, wire shapes, and how transport
// failures map onto the client error taxonomy.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// DefaultTimeout bounds every backend call unless overridden.
const DefaultTimeout = 15 * time.Second

// Options groups dependencies for Client.
type Options struct {
	BaseURL string
	// Timeout applies per request. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is a thin, typed consumer of the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a Client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	} else if httpClient.Timeout == 0 {
		httpClient.Timeout = timeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// networkHint is appended to connectivity failures so the user gets a
// checklist instead of a bare dial error.
func (c *Client) networkHint() string {
	return fmt.Sprintf("Check: (1) Server running at %s? (2) Same network? (3) Firewall allowing the port?", c.baseURL)
}

// do executes a request and classifies transport-level failures.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	res, err := c.httpClient.Do(req)
	if err == nil {
		return res, nil
	}

	if req.Context().Err() == context.Canceled {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeNetwork, "request timed out after %s", c.httpClient.Timeout)
	}

	return nil, apperrors.Wrap(err, apperrors.ErrCodeNetwork, "network request failed").
		WithHint(c.networkHint())
}

// decodeJSON parses a response body, distinguishing empty and non-JSON
// bodies from plain HTTP error statuses.
func decodeJSON(res *http.Response, out any) error {
	defer res.Body.Close() //nolint:errcheck // read side only

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeNetwork, "read response body")
	}

	if len(bytes.TrimSpace(body)) == 0 {
		if res.StatusCode >= 200 && res.StatusCode < 300 {
			return apperrors.MalformedResponse("server returned an empty response")
		}
		return apperrors.MalformedResponse(fmt.Sprintf("request failed (%d): empty response", res.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeMalformedResponse,
			"invalid response from server (not JSON), status %d", res.StatusCode)
	}
	return nil
}

// errorEnvelope is the backend's error shape.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (e errorEnvelope) message(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	return fallback
}

// statusError maps a non-2xx status plus backend message to an AppError.
func statusError(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		return apperrors.Unauthorized(message)
	case status == http.StatusNotFound:
		return apperrors.NotFound(message)
	case status >= 400 && status < 500:
		return apperrors.Validation(message)
	default:
		return apperrors.Internal(message)
	}
}

// sendJSON issues a request with an optional JSON body.
func (c *Client) sendJSON(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req)
}

func (c *Client) getJSON(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req)
}
