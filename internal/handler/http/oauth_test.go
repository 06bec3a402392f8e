// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Mikheev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/service"
	"github.com/pmikheev/go-chat-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock OAuthService
// ─────────────────────────────────────────────

// mockOAuthService implements service.OAuthService for unit tests.
type mockOAuthService struct {
	authCodeURLFn func() string
	callbackFn    func(ctx context.Context, code string) (models.User, string, error)
}

func (m *mockOAuthService) AuthCodeURL() string {
	return m.authCodeURLFn()
}

func (m *mockOAuthService) Callback(ctx context.Context, code string) (models.User, string, error) {
	return m.callbackFn(ctx, code)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithOAuth builds a Handler with an OAuth mock plus an
// AuthService mock for token issuance.
func newHandlerWithOAuth(t *testing.T, oauth service.OAuthService, auth service.AuthService) *Handler {
	t.Helper()
	return newHandlerWithServices(t, &service.Services{
		AuthService:  auth,
		OAuthService: oauth,
	})
}

// tokenIssuer returns an AuthService mock that issues the given signed token.
func tokenIssuer(signed string) *mockAuthService {
	return &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signed), nil
		},
	}
}

// ─────────────────────────────────────────────
// googleStart
// ─────────────────────────────────────────────

// TestGoogleStart_RedirectsToConsentPage verifies that the start endpoint
// issues a 302 to the provider's consent URL.
func TestGoogleStart_RedirectsToConsentPage(t *testing.T) {
	const consentURL = "https://accounts.google.com/o/oauth2/auth?client_id=test"

	oauth := &mockOAuthService{
		authCodeURLFn: func() string { return consentURL },
	}

	h := newHandlerWithOAuth(t, oauth, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	rec := httptest.NewRecorder()

	h.googleStart(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, consentURL, rec.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// googleCallback — missing code
// ─────────────────────────────────────────────

// TestGoogleCallback_MissingCode verifies that a callback without the
// authorization code results in 400 Bad Request.
func TestGoogleCallback_MissingCode(t *testing.T) {
	h := newHandlerWithOAuth(t, &mockOAuthService{}, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing code")
}

// ─────────────────────────────────────────────
// googleCallback — adapter errors
// ─────────────────────────────────────────────

// TestGoogleCallback_NoIDToken verifies that a token set without an
// id_token maps to 400 with the exact message.
func TestGoogleCallback_NoIDToken(t *testing.T) {
	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return models.User{}, "", adapter.ErrNoIDToken
		},
	}

	h := newHandlerWithOAuth(t, oauth, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing id_token from Google")
}

// TestGoogleCallback_InvalidIDToken verifies that a failed id_token
// verification maps to 400 with the exact message.
func TestGoogleCallback_InvalidIDToken(t *testing.T) {
	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return models.User{}, "", errors.Join(errors.New("bad signature"), adapter.ErrInvalidIDToken)
		},
	}

	h := newHandlerWithOAuth(t, oauth, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid id_token")
}

// TestGoogleCallback_EmailMissing verifies that a verified identity without
// an email claim maps to 400 with the exact message.
func TestGoogleCallback_EmailMissing(t *testing.T) {
	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return models.User{}, "", adapter.ErrEmailMissing
		},
	}

	h := newHandlerWithOAuth(t, oauth, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Google email missing")
}

// TestGoogleCallback_ExchangeFails verifies that an unexpected exchange
// failure maps to 500 Internal Server Error.
func TestGoogleCallback_ExchangeFails(t *testing.T) {
	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return models.User{}, "", errors.New("token endpoint unreachable")
		},
	}

	h := newHandlerWithOAuth(t, oauth, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

// ─────────────────────────────────────────────
// googleCallback — existing account
// ─────────────────────────────────────────────

// TestGoogleCallback_ExistingUser verifies that a returning user gets a
// session cookie and a clean redirect to the front end with no pw parameter.
func TestGoogleCallback_ExistingUser(t *testing.T) {
	const signedToken = "oauth.session.token"

	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, code string) (models.User, string, error) {
			require.Equal(t, "auth-code-123", code)
			return persistedAlice, "", nil
		},
	}

	h := newHandlerWithOAuth(t, oauth, tokenIssuer(signedToken))
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=auth-code-123", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, signedToken, sessionCookie(t, rec).Value)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", location.Scheme+"://"+location.Host)
	assert.Empty(t, location.Query().Get("pw"))
}

// ─────────────────────────────────────────────
// googleCallback — first login provisioning
// ─────────────────────────────────────────────

// TestGoogleCallback_FirstLoginCarriesGeneratedPassword verifies that a
// provisioned account's one-time password rides the redirect as the pw
// query parameter.
func TestGoogleCallback_FirstLoginCarriesGeneratedPassword(t *testing.T) {
	const generated = "Alice@0000"

	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return persistedAlice, generated, nil
		},
	}

	h := newHandlerWithOAuth(t, oauth, tokenIssuer("t"))
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, generated, location.Query().Get("pw"))
}

// TestGoogleCallback_CreateTokenFails verifies that a token issuance failure
// after the account was resolved maps to 500 and sets no cookie.
func TestGoogleCallback_CreateTokenFails(t *testing.T) {
	oauth := &mockOAuthService{
		callbackFn: func(_ context.Context, _ string) (models.User, string, error) {
			return persistedAlice, "", nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newHandlerWithOAuth(t, oauth, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.googleCallback(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}
