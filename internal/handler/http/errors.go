package http

import (
	"errors"
	"net/http"

	"github.com/pmikheev/go-chat-server/internal/utils"
	"github.com/pmikheev/go-chat-server/models"
)

// Sentinel errors used by the session-guard middleware.
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie provided")

	// ErrInvalidSessionToken is returned when the cookie is present but its
	// token fails validation.
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// User-safe response messages. Internal error details are logged, never
// returned to the client.
const (
	msgAllFieldsRequired   = "All fields are required"
	msgPasswordTooShort    = "Password must be at least 6 characters"
	msgEmailAlreadyExists  = "Email already exists"
	msgInvalidCredentials  = "Invalid credentials"
	msgLoggedOut           = "Logged out successfully"
	msgProfilePicRequired  = "Profile pic is required"
	msgMissingCode         = "Missing code"
	msgMissingIDToken      = "Missing id_token from Google"
	msgInvalidIDToken      = "Invalid id_token"
	msgEmailMissing        = "Google email missing"
	msgInternalServerError = "Internal Server Error"
)

// respondError writes the user-safe JSON error body shared by every endpoint.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}
