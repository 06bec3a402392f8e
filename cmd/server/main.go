package main

import (
	"context"
	"fmt"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/handler"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/server"
	"github.com/pmikheev/go-chat-server/internal/service"
	"github.com/pmikheev/go-chat-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	var identityProvider adapter.IdentityProvider
	if cfg.OAuth.Google.IsComplete() {
		identityProvider = adapter.NewGoogleIdentityProvider(cfg.OAuth.Google, log)
	} else {
		log.Warn().Msg("google oauth is not configured, oauth routes are disabled")
	}

	var imageHost adapter.ImageHost
	if cfg.Adapter.Cloudinary.IsComplete() {
		imageHost = adapter.NewCloudinaryImageHost(cfg.Adapter.Cloudinary, log)
	} else {
		log.Warn().Msg("cloudinary is not configured, profile picture uploads will fail")
	}

	services := service.NewServices(storages, identityProvider, imageHost, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
