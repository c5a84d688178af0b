package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "token among oauth params",
			url:  "https://x/y?state=abc&token=XYZ&code=123",
			want: "XYZ",
		},
		{
			name: "custom scheme",
			url:  "app://redirect?token=ABC",
			want: "ABC",
		},
		{
			name: "token only",
			url:  "https://www.smartwave.name/auth/done?token=eyJhbGciOiJIUzI1NiJ9.e30.sig",
			want: "eyJhbGciOiJIUzI1NiJ9.e30.sig",
		},
		{
			name: "stops at fragment",
			url:  "smartwave://done?token=ABC#section",
			want: "ABC",
		},
		{
			name: "stops at next param via fallback",
			url:  "not a url at all token=DEF&state=zzz",
			want: "DEF",
		},
		{
			name: "no token",
			url:  "https://x/y?state=abc&code=123",
			want: "",
		},
		{
			name: "provider token name is not ours",
			url:  "https://x/y?id_token=NOPE&access_token=NOPE2",
			want: "",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
		{
			name: "empty token value",
			url:  "https://x/y?token=&state=abc",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractToken(tt.url))
		})
	}
}
