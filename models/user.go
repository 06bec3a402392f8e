package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"fullName"`

	// Email is the unique identifier the user authenticates with.
	// Always stored case-normalized (trimmed, lower-cased).
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	Password string `json:"-"`

	// ProfilePic is the durable URL of the user's avatar on the image host,
	// or an empty string if no picture was uploaded.
	ProfilePic string `json:"profilePic"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
