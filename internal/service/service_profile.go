package service

import (
	"context"
	"fmt"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/store"
	"github.com/pmikheev/go-chat-server/models"
)

// profileService is the concrete implementation of ProfileService. Image
// bytes never touch the database: the payload goes to the image host and
// only the returned URL is persisted.
type profileService struct {
	userRepository store.UserRepository
	imageHost      adapter.ImageHost
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repository and image host.
func NewProfileService(userRepository store.UserRepository, imageHost adapter.ImageHost, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		imageHost:      imageHost,
		logger:         logger,
	}
}

// GetUser returns the account of the authenticated user.
func (p *profileService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfilePic uploads the inline image to the image host and stores the
// durable URL it returns on the user record.
//
// Returns ErrInvalidDataProvided when the payload is empty; upload and
// storage failures are passed through wrapped.
func (p *profileService) UpdateProfilePic(ctx context.Context, userID int64, profilePic string) (models.User, error) {
	log := logger.FromContext(ctx)

	if profilePic == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if p.imageHost == nil {
		return models.User{}, ErrImageHostNotConfigured
	}

	uploadedURL, err := p.imageHost.Upload(ctx, profilePic)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("image upload failed")
		return models.User{}, fmt.Errorf("image upload failed: %w", err)
	}

	updatedUser, err := p.userRepository.UpdateProfilePic(ctx, userID, uploadedURL)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile picture update failed")
		return models.User{}, fmt.Errorf("profile picture update failed: %w", err)
	}

	return updatedUser, nil
}
