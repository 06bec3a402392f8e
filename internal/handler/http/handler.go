package http

import (
	"time"

	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/service"
)

// Handler carries the service façade plus the few transport-level settings
// the handlers need: session-cookie attributes and the front-end origin the
// OAuth callback redirects back to.
type Handler struct {
	services *service.Services

	cookieName     string
	cookieSecure   bool
	cookieLifetime time.Duration
	frontendURL    string

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, oauthCfg config.OAuth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieName:     appCfg.CookieName,
		cookieSecure:   appCfg.CookieSecure,
		cookieLifetime: appCfg.TokenDuration,
		frontendURL:    oauthCfg.FrontendURL,
		logger:         logger,
	}
}
