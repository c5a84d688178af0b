package qrenc

// Package qrenc rasterizes text into QR PNG bytes using skip2/go-qrcode.
// Error correction level H matches the web app's QR rendering, which keeps
// scans working when the card's QR is partially obscured by the white
// wrapper border in printed/shared images.

import (
	qrcode "github.com/skip2/go-qrcode"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Encoder implements ports.QREncoder.
type Encoder struct{}

// NewEncoder constructs an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodePNG rasterizes text to a size x size PNG.
func (e *Encoder) EncodePNG(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, apperrors.GenerationFailed("QR content must be a non-empty string")
	}
	if size <= 0 {
		return nil, apperrors.GenerationFailed("QR size must be positive")
	}

	png, err := qrcode.Encode(text, qrcode.High, size)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "QR image could not be generated")
	}
	if len(png) == 0 {
		return nil, apperrors.GenerationFailed("QR image could not be generated")
	}
	return png, nil
}
