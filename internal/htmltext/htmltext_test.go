package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"simple markup", "<b>Access</b> <i>approved</i>", "Access approved"},
		{"block elements become spaces", "<p>Line one</p><p>Line two</p>", "Line one Line two"},
		{"script dropped", `<script>alert("x")</script>Visible`, "Visible"},
		{"style dropped", "<style>.a{color:red}</style>Visible", "Visible"},
		{"nested", "<div>Your pass <b>HQ Door</b> was <span>approved</span>.</div>", "Your pass HQ Door was approved."},
		{"whitespace collapsed", "a\n\n  b\t c", "a b c"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}
