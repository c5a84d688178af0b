package share

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_AvailableFollowsLookPath(t *testing.T) {
	s := NewSink(&bytes.Buffer{})

	s.lookPath = func(string) (string, error) { return "/usr/bin/opener", nil }
	assert.True(t, s.Available(context.Background()))

	s.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.False(t, s.Available(context.Background()))
}

func TestSink_ShareRunsOpener(t *testing.T) {
	s := NewSink(&bytes.Buffer{})

	var gotName string
	var gotArgs []string
	s.runCmd = func(_ context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	require.NoError(t, s.Share(context.Background(), "/tmp/card.png", "My Card"))
	assert.Equal(t, openerCommand(), gotName)
	assert.Equal(t, []string{"/tmp/card.png"}, gotArgs)
}

func TestSink_ShareWrapsFailure(t *testing.T) {
	s := NewSink(&bytes.Buffer{})
	s.runCmd = func(context.Context, string, ...string) error {
		return errors.New("exit status 1")
	}

	err := s.Share(context.Background(), "/tmp/card.png", "My Card")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open share target")
}

func TestSink_ShareFallbackPrintsPath(t *testing.T) {
	var out bytes.Buffer
	s := NewSink(&out)

	require.NoError(t, s.ShareFallback(context.Background(), "/tmp/card.png", "Card image saved"))
	assert.Contains(t, out.String(), "Card image saved")
	assert.Contains(t, out.String(), "/tmp/card.png")
}
