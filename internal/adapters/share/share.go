package share

// Package share hands staged card images to the host platform. The rich
// path opens the file with the OS opener (share sheets are a mobile
// construct; the desktop analog is the default image handler). When no
// opener exists the fallback prints the staged path so the user can pick
// it up manually.

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Sink implements ports.ShareSink.
type Sink struct {
	// Out receives fallback share messages (normally stdout).
	Out io.Writer
	// lookPath is swappable for tests.
	lookPath func(string) (string, error)
	runCmd   func(ctx context.Context, name string, args ...string) error
}

// NewSink constructs a Sink writing fallback output to out.
func NewSink(out io.Writer) *Sink {
	return &Sink{
		Out:      out,
		lookPath: exec.LookPath,
		runCmd: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func openerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// Available reports whether the OS opener is present.
func (s *Sink) Available(_ context.Context) bool {
	_, err := s.lookPath(openerCommand())
	return err == nil
}

// Share opens the staged file with the OS opener.
func (s *Sink) Share(ctx context.Context, path, title string) error {
	if err := s.runCmd(ctx, openerCommand(), path); err != nil {
		return fmt.Errorf("open share target: %w", err)
	}
	return nil
}

// ShareFallback prints the staged path with a message.
func (s *Sink) ShareFallback(_ context.Context, path, message string) error {
	_, err := fmt.Fprintf(s.Out, "%s\n%s\n", message, path)
	return err
}
