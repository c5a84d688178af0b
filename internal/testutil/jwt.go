package testutil

import (
	"encoding/base64"
	"encoding/json"
)

// FakeJWT builds an unsigned JWT-shaped token from the given claims. The
// signature segment is garbage on purpose: the client only ever decodes
// the payload locally and must never depend on signature validity.
func FakeJWT(claims map[string]any) string {
	header := map[string]any{"alg": "HS256", "typ": "JWT"}
	return segment(header) + "." + segment(claims) + ".c2lnbmF0dXJl"
}

func segment(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(data)
}
