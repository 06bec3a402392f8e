package service

import (
	"context"

	"github.com/pmikheev/go-chat-server/models"
)

// AuthService owns the password flow and the session-token lifecycle.
type AuthService interface {
	// Signup validates and creates a new account, returning the persisted
	// user. The caller issues the session credential only after this
	// returns, so a failed write never leaves a cookie for an unsaved record.
	Signup(ctx context.Context, fullName, email, password string) (models.User, error)

	// Login verifies the credentials and returns the matching user. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token with its UserID populated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OAuthService owns the redirect-based exchange with the external identity
// provider, including first-login account provisioning.
type OAuthService interface {
	// AuthCodeURL returns the provider consent URL for the Start transition.
	AuthCodeURL() string

	// Callback runs the full callback transition: code exchange, identity
	// verification, and find-or-create of the local account. When an account
	// was provisioned on this call, the generated plaintext password is
	// returned alongside the user; otherwise it is empty.
	Callback(ctx context.Context, code string) (models.User, string, error)
}

// ProfileService owns profile reads and the avatar-upload path.
type ProfileService interface {
	// GetUser returns the account of the authenticated user.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfilePic uploads the inline image to the image host and stores
	// the returned URL on the user.
	UpdateProfilePic(ctx context.Context, userID int64, profilePic string) (models.User, error)
}
