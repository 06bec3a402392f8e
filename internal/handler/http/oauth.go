package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/logger"
)

// googleStart begins the redirect-based OAuth flow: it sends the browser to
// the provider's consent page. No local state is created.
func (h *Handler) googleStart(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.services.OAuthService.AuthCodeURL(), http.StatusFound)
}

// googleCallback completes the OAuth flow. The provider redirects here with
// an authorization code; the service exchanges it, verifies the identity
// token, and resolves the account. The session cookie is only set once the
// account is confirmed persisted, and the browser is then redirected to the
// front end.
//
// When an account was provisioned on this callback, its generated one-time
// password is appended to the redirect as the "pw" query parameter so the
// user can record it once. The redirect always targets the configured
// front-end origin.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, msgMissingCode, http.StatusBadRequest)
		return
	}

	user, generatedPassword, err := h.services.OAuthService.Callback(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrNoIDToken):
			log.Err(err).Msg("token set carried no id_token")
			respondError(w, msgMissingIDToken, http.StatusBadRequest)
			return
		case errors.Is(err, adapter.ErrInvalidIDToken):
			log.Err(err).Msg("id_token verification failed")
			respondError(w, msgInvalidIDToken, http.StatusBadRequest)
			return
		case errors.Is(err, adapter.ErrEmailMissing):
			log.Err(err).Msg("verified identity carried no email")
			respondError(w, msgEmailMissing, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during oauth callback")
			respondError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)

	redirectURL, err := url.Parse(h.frontendURL)
	if err != nil {
		log.Err(err).Str("frontend_url", h.frontendURL).Msg("misconfigured frontend url")
		respondError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	if generatedPassword != "" {
		query := redirectURL.Query()
		query.Set("pw", generatedPassword)
		redirectURL.RawQuery = query.Encode()
	}

	http.Redirect(w, r, redirectURL.String(), http.StatusFound)
}
