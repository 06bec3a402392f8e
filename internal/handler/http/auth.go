package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/service"
	"github.com/pmikheev/go-chat-server/internal/store"
	"github.com/pmikheev/go-chat-server/internal/utils"
	"github.com/pmikheev/go-chat-server/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, msgAllFieldsRequired, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid signup data provided")
			respondError(w, msgAllFieldsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("password too short")
			respondError(w, msgPasswordTooShort, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			respondError(w, msgEmailAlreadyExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			respondError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	// The record is confirmed persisted at this point, so issuing the
	// session credential cannot outlive an unsaved account.
	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.NewUserResponse(registeredUser), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, msgInvalidCredentials, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// Unknown email and wrong password share one message so the
			// endpoint cannot be used to enumerate registered accounts.
			log.Err(err).Msg("invalid credentials")
			respondError(w, msgInvalidCredentials, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			respondError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.NewUserResponse(foundUser), http.StatusOK)
}

// logout clears the session cookie. It is idempotent: clearing succeeds even
// when no session existed.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}
