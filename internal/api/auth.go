package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/smartwave/smartwave-go/internal/domain/session"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

type credentialsResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
	errorEnvelope
}

func (r credentialsResponse) credentials() session.Credentials {
	return session.Credentials{Token: r.Token, User: r.User}
}

// Login exchanges email/password credentials for a token and user record.
// The email is normalized (trimmed, lowercased) before it goes on the wire.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	payload := map[string]string{
		"email":    strings.ToLower(strings.TrimSpace(email)),
		"password": password,
	}

	res, err := c.sendJSON(ctx, http.MethodPost, "/api/mobile/auth", "", payload)
	if err != nil {
		return session.Credentials{}, err
	}

	var data credentialsResponse
	if err := decodeJSON(res, &data); err != nil {
		return session.Credentials{}, err
	}
	if res.StatusCode != http.StatusOK {
		return session.Credentials{}, apperrors.InvalidCredentials(data.message("Login failed"))
	}
	return data.credentials(), nil
}

// BeginGoogleSignIn asks the backend for the Google auth URL. The PKCE
// challenge pair is generated by the caller (session service) so the
// verifier never leaves the sign-in flow that minted it.
func (c *Client) BeginGoogleSignIn(ctx context.Context, returnURL, codeChallenge, codeVerifier string) (string, error) {
	payload := map[string]string{
		"returnUrl":      returnURL,
		"code_challenge": codeChallenge,
		"code_verifier":  codeVerifier,
	}

	res, err := c.sendJSON(ctx, http.MethodPost, "/api/mobile/auth/google/start", "", payload)
	if err != nil {
		return "", err
	}

	var data struct {
		AuthURL string `json:"authUrl"`
		errorEnvelope
	}
	if err := decodeJSON(res, &data); err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", statusError(res.StatusCode, data.message("Failed to get auth URL"))
	}
	return data.AuthURL, nil
}

// ExchangeGoogleCode completes the in-app Google code flow.
func (c *Client) ExchangeGoogleCode(ctx context.Context, code, redirectURI string) (session.Credentials, error) {
	payload := map[string]string{"code": code, "redirectUri": redirectURI}
	return c.federatedLogin(ctx, "/api/mobile/auth/google", payload, "Google sign-in failed")
}

// LoginWithGoogleIDToken signs in with a Google-issued ID token.
func (c *Client) LoginWithGoogleIDToken(ctx context.Context, idToken string) (session.Credentials, error) {
	payload := map[string]string{"idToken": idToken}
	return c.federatedLogin(ctx, "/api/mobile/auth/google", payload, "Google sign-in failed")
}

// LoginWithApple signs in with an Apple identity token.
func (c *Client) LoginWithApple(ctx context.Context, identityToken string) (session.Credentials, error) {
	payload := map[string]string{"identityToken": identityToken}
	return c.federatedLogin(ctx, "/api/mobile/auth/apple", payload, "Apple sign-in failed")
}

func (c *Client) federatedLogin(ctx context.Context, path string, payload any, fallback string) (session.Credentials, error) {
	res, err := c.sendJSON(ctx, http.MethodPost, path, "", payload)
	if err != nil {
		return session.Credentials{}, err
	}

	var data credentialsResponse
	if err := decodeJSON(res, &data); err != nil {
		return session.Credentials{}, err
	}
	if res.StatusCode != http.StatusOK {
		return session.Credentials{}, statusError(res.StatusCode, data.message(fallback))
	}
	return data.credentials(), nil
}
