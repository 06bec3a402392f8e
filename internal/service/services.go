package service

import (
	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/store"
)

// Services aggregates every service the transport layer depends on.
//
// OAuthService is nil when the Google provider is not configured; the
// handler layer skips the OAuth routes in that case.
type Services struct {
	AuthService    AuthService
	OAuthService   OAuthService
	ProfileService ProfileService
}

// NewServices wires all services to their repositories and outbound adapters.
func NewServices(storages *store.Storages, provider adapter.IdentityProvider, imageHost adapter.ImageHost, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	services := &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, imageHost, logger),
	}

	if provider != nil {
		services.OAuthService = NewOAuthService(storages.UserRepository, provider, logger)
	}

	return services
}
