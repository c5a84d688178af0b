package imagefetch

// Package imagefetch resolves remote profile photo and company logo URLs
// into decoded images ahead of card composition. Fetching happens before
// any snapshot so a slow or dead image host can only delay an export up to
// the context deadline, never truncate the rendered output.

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"net/http"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Fetcher implements ports.ImageFetcher over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher constructs a Fetcher. client may be nil to use a default.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{httpClient: client}
}

// Fetch downloads and decodes the image at url, bounded by ctx.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build image request")
	}

	res, err := f.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeNetwork, "fetch image")
	}
	defer res.Body.Close() //nolint:errcheck // read side

	if res.StatusCode != http.StatusOK {
		return nil, apperrors.Network(fmt.Sprintf("fetch image: status %d", res.StatusCode))
	}

	img, _, err := image.Decode(res.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedResponse, "decode image")
	}
	return img, nil
}
