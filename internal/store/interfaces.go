package store

import (
	"context"

	"github.com/pmikheev/go-chat-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence contract for the [models.User] entity.
//
// Email uniqueness is enforced by the store itself (a unique index), so two
// concurrent CreateUser calls for the same email resolve deterministically:
// one wins, the other receives [ErrEmailAlreadyExists].
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given case-normalized email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier, or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfilePic replaces the user's avatar URL and returns the
	// updated record.
	UpdateProfilePic(ctx context.Context, userID int64, profilePic string) (models.User, error)
}
