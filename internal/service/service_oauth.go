package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/store"
	"github.com/pmikheev/go-chat-server/internal/utils"
	"github.com/pmikheev/go-chat-server/models"
)

// defaultOAuthName is used when the provider's identity token carries no
// display-name claim.
const defaultOAuthName = "User"

// oauthService is the concrete implementation of OAuthService. It sequences
// the callback transition — code exchange, identity verification, account
// find-or-create — against the external provider and the UserRepository.
type oauthService struct {
	userRepository store.UserRepository
	provider       adapter.IdentityProvider
	logger         *logger.Logger
}

// NewOAuthService constructs an OAuthService on top of the given identity
// provider. The service keeps no per-request state; the provider callback is
// the only trust anchor of the flow.
func NewOAuthService(userRepository store.UserRepository, provider adapter.IdentityProvider, logger *logger.Logger) OAuthService {
	return &oauthService{
		userRepository: userRepository,
		provider:       provider,
		logger:         logger,
	}
}

// AuthCodeURL returns the provider's consent URL. No local state is created
// for the Start transition.
func (o *oauthService) AuthCodeURL() string {
	return o.provider.AuthCodeURL()
}

// Callback exchanges the authorization code, verifies the returned identity
// token, and resolves the verified email to a local account.
//
// First login with a previously-unseen email provisions an account: a
// password of the form "<CapitalizedFirstName>@0000" is generated, bcrypt
// hashed, and stored, so the account can also be used through the password
// flow. The generated plaintext is returned exactly once, on the call that
// created the account.
//
// A concurrent callback racing on the same unseen email loses on the
// store-level unique index; the loser re-reads the winner's record and
// reports no generated password, leaving the stored credential untouched.
func (o *oauthService) Callback(ctx context.Context, code string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	rawIDToken, err := o.provider.Exchange(ctx, code)
	if err != nil {
		return models.User{}, "", err
	}

	identity, err := o.provider.VerifyIDToken(ctx, rawIDToken)
	if err != nil {
		return models.User{}, "", err
	}

	email := NormalizeEmail(identity.Email)

	foundUser, err := o.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		// Existing account: reuse it, never touch the stored password.
		return foundUser, "", nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, "", fmt.Errorf("user search by email failed: %w", err)
	}

	return o.provisionUser(ctx, identity, email)
}

// provisionUser creates the account for a first-time OAuth login.
func (o *oauthService) provisionUser(ctx context.Context, identity adapter.Identity, email string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	fullName := identity.Name
	if fullName == "" {
		fullName = defaultOAuthName
	}

	generatedPassword := utils.GeneratePasswordFromName(fullName)
	hash, err := utils.HashPassword(generatedPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, "", fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := o.userRepository.CreateUser(ctx, models.User{
		FullName:   fullName,
		Email:      email,
		Password:   hash,
		ProfilePic: identity.Picture,
	})
	if err == nil {
		log.Info().Int64("id", createdUser.UserID).Msg("provisioned account on first oauth login")
		return createdUser, generatedPassword, nil
	}

	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// Lost a provisioning race; the winner's record is authoritative.
		existingUser, findErr := o.userRepository.FindUserByEmail(ctx, email)
		if findErr != nil {
			return models.User{}, "", fmt.Errorf("user search by email failed: %w", findErr)
		}
		return existingUser, "", nil
	}

	log.Err(err).Str("email", email).Msg("user creation ended with error")
	return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
}
