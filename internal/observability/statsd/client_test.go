package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestFormatTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{
		"env": "dev",
		// Padded key/value to ensure trimming logic works.
		" platform ": " cli ",
	}
	local := map[string]string{
		"result": " success ",
		"":       "ignored",
		"env":    "test",
	}

	got := formatTags(global, local)
	want := "|#env:test,platform:cli,result:success"
	if got != want {
		t.Fatalf("formatTags mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatTagsEmpty(t *testing.T) {
	t.Parallel()

	if got := formatTags(nil, nil); got != "" {
		t.Fatalf("formatTags(nil, nil) = %q, want empty string", got)
	}
}

func TestMetricName(t *testing.T) {
	t.Parallel()

	c := &Client{prefix: "smartwave"}
	if got := c.metricName("session.transition"); got != "smartwave.session.transition" {
		t.Fatalf("metricName = %q", got)
	}
	if got := c.metricName("  "); got != "" {
		t.Fatalf("metricName blank = %q, want empty", got)
	}

	bare := &Client{}
	if got := bare.metricName("export.job"); got != "export.job" {
		t.Fatalf("metricName without prefix = %q", got)
	}
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{Enabled: true, Address: "   "})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	// Emitting on a disabled client must be a no-op, not a crash.
	client.Count("session.transition", 1, nil)
	if err := client.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestNewClientDialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	if err == nil {
		t.Fatal("expected NewClient to error for invalid address")
	}
	if !strings.Contains(err.Error(), "statsd dial") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientEmitsOverUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer pc.Close()

	client, err := NewClient(Config{
		Enabled: true,
		Address: pc.LocalAddr().String(),
		Prefix:  "smartwave",
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	client.Count("export.job", 1, map[string]string{"result": "success"})

	buf := make([]byte, 512)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	line := string(buf[:n])
	want := "smartwave.export.job:1|c|#result:success"
	if line != want {
		t.Fatalf("line = %q, want %q", line, want)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	t.Parallel()

	var c *Client
	c.Count("x", 1, nil)
	c.Timing("x", time.Second, nil)
	if err := c.Close(); err != nil {
		t.Fatalf("nil Close error: %v", err)
	}
}
