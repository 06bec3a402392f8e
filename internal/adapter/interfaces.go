// Package adapter implements outbound integrations with third-party
// services: the Google identity provider used by the OAuth login flow and
// the Cloudinary image host used by the profile-picture flow.
//
// Each integration is exposed through a small capability interface so the
// service layer stays testable with fakes.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Identity is the verified subset of an OIDC identity token the application
// cares about. Email is guaranteed non-empty by the verifier.
type Identity struct {
	// Email is the provider-verified email address.
	Email string

	// Name is the display name claim, or "" if the provider omitted it.
	Name string

	// Picture is the avatar URL claim, or "" if the provider omitted it.
	Picture string
}

// IdentityProvider abstracts the redirect-based OAuth 2.0 / OIDC exchange
// with an external identity provider.
type IdentityProvider interface {
	// AuthCodeURL builds the provider's consent page URL the browser is
	// redirected to. No local state is created.
	AuthCodeURL() string

	// Exchange trades the authorization code for the provider's token set
	// and returns the raw identity token from it. Returns ErrNoIDToken when
	// the token set carries no identity token.
	Exchange(ctx context.Context, code string) (string, error)

	// VerifyIDToken checks the identity token's signature and audience
	// against the configured client and returns the verified identity.
	// This verification is the sole trust anchor of the OAuth flow: it
	// authenticates the provider's claim rather than merely decoding it.
	VerifyIDToken(ctx context.Context, rawIDToken string) (Identity, error)
}

// ImageHost abstracts the external CDN that stores profile pictures.
type ImageHost interface {
	// Upload sends the inline image payload (a base64 data URI) to the host
	// and returns the durable URL it is served from.
	Upload(ctx context.Context, file string) (string, error)
}
