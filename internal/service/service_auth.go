package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/store"
	"github.com/pmikheev/go-chat-server/internal/utils"
	"github.com/pmikheev/go-chat-server/models"
)

// minPasswordLength is the minimum accepted password length for signup.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and the JWT session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates that all three fields are present and the password is at
// least six characters, hashes the password with bcrypt (random per-hash
// salt), and delegates persistence to the UserRepository. The account is
// confirmed written before the caller issues any session credential.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - ErrPasswordTooShort if the password has fewer than six characters.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
func (a *authService) Signup(ctx context.Context, fullName, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if fullName == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FullName: fullName,
		Email:    NormalizeEmail(email),
		Password: hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by case-normalized email and compares the supplied
// password against the stored bcrypt hash. An unknown email and a wrong
// password both fail with ErrInvalidCredentials so callers cannot probe for
// registered addresses.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Error().Str("email", email).Msg("no user found by email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, password) {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// NormalizeEmail lower-cases and trims an email address so that lookups and
// the store-level unique index agree on a single canonical spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
