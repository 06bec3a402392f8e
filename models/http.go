package models

// SignupRequest is the JSON body of POST /api/auth/signup.
// All three fields are required; validation happens at the service layer.
type SignupRequest struct {
	// FullName is the display name for the new account.
	FullName string `json:"fullName"`

	// Email is the unique identifier the account will authenticate with.
	Email string `json:"email"`

	// Password is the plaintext password chosen by the user.
	// It is hashed immediately at the service boundary and never stored.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	// Email identifies the account to authenticate.
	Email string `json:"email"`

	// Password is the plaintext password to verify against the stored hash.
	Password string `json:"password"`
}

// UpdateProfileRequest is the JSON body of PUT /api/auth/update-profile.
type UpdateProfileRequest struct {
	// ProfilePic is the inline image payload (a base64 data URI produced by
	// the browser). It is forwarded to the image host, never persisted raw.
	ProfilePic string `json:"profilePic"`
}
