package adapter

import "errors"

// Sentinel errors returned by outbound adapters. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoIDToken is returned when the provider's token set contains no
	// identity token, so there is nothing to verify.
	ErrNoIDToken = errors.New("token set contains no id_token")

	// ErrInvalidIDToken is returned when the identity token fails signature,
	// audience, issuer, or expiry verification.
	ErrInvalidIDToken = errors.New("invalid id_token")

	// ErrEmailMissing is returned when a verified identity token carries no
	// email claim; the application cannot provision an account without one.
	ErrEmailMissing = errors.New("identity token contains no email")

	// ErrUploadFailed is returned when the image host rejects an upload or
	// responds without a usable URL.
	ErrUploadFailed = errors.New("image upload failed")
)
