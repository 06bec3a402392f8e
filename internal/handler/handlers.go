package handler

import (
	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/handler/http"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/service"
)

// Handlers aggregates the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, cfg.OAuth, logger),
	}
}
