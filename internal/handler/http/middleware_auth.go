package http

import (
	"context"
	"net/http"

	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates its JWT via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the cookie
// is absent ([ErrNoSessionCookie]) or its token is expired, malformed, or
// signed with the wrong key ([ErrInvalidSessionToken]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.cookieName)
		if err != nil || cookie.Value == "" {
			log.Err(ErrNoSessionCookie).Send()
			respondError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Err(ErrInvalidSessionToken).Msg("error occurred during parsing token")
			respondError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
