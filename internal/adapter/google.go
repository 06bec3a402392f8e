package adapter

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
)

// googleIssuers are the two issuer spellings Google uses in id_tokens.
var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// googleClaims is the subset of Google's id_token payload the application
// consumes, on top of the registered claim set used for expiry checks.
type googleClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// googleIdentityProvider implements [IdentityProvider] for Google's
// authorization-code redirect flow. The code exchange is delegated to
// golang.org/x/oauth2; id_token verification is done locally against
// Google's published JWKS.
type googleIdentityProvider struct {
	oauth  *oauth2.Config
	jwks   *jwksCache
	logger *logger.Logger
}

// NewGoogleIdentityProvider constructs an [IdentityProvider] from the
// configured client credentials. The JWKS cache starts empty and is filled
// on the first verification.
func NewGoogleIdentityProvider(cfg config.Google, logger *logger.Logger) IdentityProvider {
	logger.Debug().Str("client_id", cfg.ClientID).Msg("creating google identity provider")

	return &googleIdentityProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		jwks:   newJWKSCache(googleJWKSURL),
		logger: logger,
	}
}

// AuthCodeURL implements [IdentityProvider]. The flow requests offline
// access and forces the consent screen, matching the scopes the application
// was registered with. No per-request state is kept.
func (g *googleIdentityProvider) AuthCodeURL() string {
	return g.oauth.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange implements [IdentityProvider]. It trades the authorization code
// for Google's token set and pulls the raw id_token out of it.
func (g *googleIdentityProvider) Exchange(ctx context.Context, code string) (string, error) {
	log := logger.FromContext(ctx)

	tokenSet, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Msg("code exchange with google failed")
		return "", fmt.Errorf("code exchange failed: %w", err)
	}

	rawIDToken, ok := tokenSet.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", ErrNoIDToken
	}

	return rawIDToken, nil
}

// VerifyIDToken implements [IdentityProvider]. It verifies the RS256
// signature against Google's JWKS, the audience against the configured
// client ID, the issuer against Google's two issuer spellings, and the
// expiry. Any verification failure is normalised to [ErrInvalidIDToken];
// a token that verifies but carries no email fails with [ErrEmailMissing].
func (g *googleIdentityProvider) VerifyIDToken(ctx context.Context, rawIDToken string) (Identity, error) {
	log := logger.FromContext(ctx)

	claims := &googleClaims{}
	_, err := jwt.ParseWithClaims(rawIDToken, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("id_token header carries no kid")
		}
		return g.jwks.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(g.oauth.ClientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.Err(err).Msg("id_token verification failed")
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	if !issuedByGoogle(claims.Issuer) {
		log.Error().Str("iss", claims.Issuer).Msg("id_token issued by unexpected issuer")
		return Identity{}, ErrInvalidIDToken
	}

	if claims.Email == "" {
		return Identity{}, ErrEmailMissing
	}

	return Identity{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

func issuedByGoogle(issuer string) bool {
	for _, iss := range googleIssuers {
		if issuer == iss {
			return true
		}
	}
	return false
}
