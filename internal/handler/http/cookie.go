package http

import (
	"net/http"

	"github.com/pmikheev/go-chat-server/models"
)

// setSessionCookie attaches the signed session token to the response as an
// HTTP-only cookie scoped to the whole API origin. Max-Age mirrors the
// token's own lifetime so cookie and token expire together.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cookieLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an immediately
// expiring value. Safe to call whether or not a session existed.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
