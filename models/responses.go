package models

// UserResponse is the public-safe subset of a [User] returned by the auth
// endpoints. It deliberately carries no credential material: the password
// hash never leaves the server process.
type UserResponse struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the user's case-normalized email address.
	Email string `json:"email"`

	// ProfilePic is the avatar URL, or an empty string if none is set.
	ProfilePic string `json:"profilePic"`
}

// NewUserResponse projects a persisted [User] onto its public-safe subset.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.UserID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// MessageResponse is the JSON acknowledgement body returned by endpoints
// that have no entity to return (e.g. logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body shared by every endpoint.
// Message is always user-safe; internal error details are logged, not returned.
type ErrorResponse struct {
	Message string `json:"message"`
}
