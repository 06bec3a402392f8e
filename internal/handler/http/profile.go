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

// updateProfile uploads a new avatar for the authenticated user and stores
// the image-host URL on the account.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, msgProfilePicRequired, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateProfilePic(ctx, userID, req.ProfilePic)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			respondError(w, msgProfilePicRequired, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			respondError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.NewUserResponse(updatedUser), http.StatusOK)
}

// checkAuth returns the authenticated user's public-safe record. The session
// guard has already validated the cookie by the time this runs.
func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.ProfileService.GetUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			// Valid token for a record that no longer exists.
			respondError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during auth check")
			respondError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.NewUserResponse(foundUser), http.StatusOK)
}
