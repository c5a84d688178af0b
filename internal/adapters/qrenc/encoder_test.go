package qrenc

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

func TestEncodePNG(t *testing.T) {
	enc := NewEncoder()

	data, err := enc.EncodePNG("BEGIN:VCARD\nVERSION:3.0\nFN:Ada\nEND:VCARD", 200)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestEncodePNG_EmptyTextFails(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.EncodePNG("", 200)
	require.Error(t, err)
	assert.True(t, apperrors.IsGenerationFailed(err))
}

func TestEncodePNG_InvalidSizeFails(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.EncodePNG("hello", 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsGenerationFailed(err))
}
