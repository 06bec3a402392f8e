// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Mikheev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pmikheev/go-chat-server/internal/adapter"
	"github.com/pmikheev/go-chat-server/internal/logger"
	"github.com/pmikheev/go-chat-server/internal/mock"
	"github.com/pmikheev/go-chat-server/internal/store"
	"github.com/pmikheev/go-chat-server/internal/utils"
	"github.com/pmikheev/go-chat-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestOAuthSvc builds an oauthService backed by provider and repository mocks.
func newTestOAuthSvc(t *testing.T, ctrl *gomock.Controller) (*oauthService, *mock.MockIdentityProvider, *mock.MockUserRepository) {
	t.Helper()
	mockProvider := mock.NewMockIdentityProvider(ctrl)
	mockRepo := mock.NewMockUserRepository(ctrl)

	svc := NewOAuthService(mockRepo, mockProvider, logger.Nop()).(*oauthService)
	return svc, mockProvider, mockRepo
}

// googleIdentity is a verified identity fixture shared across tests.
var googleIdentity = adapter.Identity{
	Email:   "alice@example.com",
	Name:    "Alice Johnson",
	Picture: "https://lh3.googleusercontent.com/a/avatar",
}

// ── AuthCodeURL ──────────────────────────────────────────────────────────────

func TestOAuthService_AuthCodeURL_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestOAuthSvc(t, ctrl)

	const consentURL = "https://accounts.google.com/o/oauth2/auth?client_id=test"
	mockProvider.EXPECT().AuthCodeURL().Return(consentURL)

	assert.Equal(t, consentURL, svc.AuthCodeURL())
}

// ── Callback — existing account ──────────────────────────────────────────────

func TestOAuthService_Callback_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	existing := models.User{UserID: 7, Email: "alice@example.com", Password: "$2a$10$storedhash"}

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "auth-code").Return("raw.id.token", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw.id.token").Return(googleIdentity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(existing, nil),
	)

	user, generated, err := svc.Callback(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, existing, user, "existing record must be reused untouched")
	assert.Empty(t, generated, "no password is generated for a returning user")
}

// TestOAuthService_Callback_EmailNormalizedBeforeLookup verifies that the
// provider's email casing cannot split one mailbox into two accounts.
func TestOAuthService_Callback_EmailNormalizedBeforeLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	identity := googleIdentity
	identity.Email = "Alice@Example.COM"

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "c").Return("raw", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw").Return(identity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(models.User{UserID: 7}, nil),
	)

	_, _, err := svc.Callback(ctx, "c")
	require.NoError(t, err)
}

// ── Callback — first login provisioning ──────────────────────────────────────

func TestOAuthService_Callback_FirstLoginProvisionsAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "auth-code").Return("raw.id.token", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw.id.token").Return(googleIdentity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(models.User{}, store.ErrNoUserWasFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "Alice Johnson", u.FullName)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, googleIdentity.Picture, u.ProfilePic)
				assert.True(t, utils.CheckPassword(u.Password, "Alice@0000"),
					"stored hash must verify the generated password")
				u.UserID = 8
				return u, nil
			},
		),
	)

	user, generated, err := svc.Callback(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, int64(8), user.UserID)
	assert.Equal(t, "Alice@0000", generated)
}

func TestOAuthService_Callback_NoNameClaimFallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	identity := adapter.Identity{Email: "noname@example.com"}

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "c").Return("raw", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw").Return(identity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "noname@example.com").
			Return(models.User{}, store.ErrNoUserWasFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "User", u.FullName)
				u.UserID = 9
				return u, nil
			},
		),
	)

	_, generated, err := svc.Callback(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "User@0000", generated)
}

// ── Callback — provisioning race ─────────────────────────────────────────────

// TestOAuthService_Callback_LostProvisioningRace verifies that a concurrent
// callback losing on the unique email index re-reads the winner's record and
// reports no generated password.
func TestOAuthService_Callback_LostProvisioningRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	winner := models.User{UserID: 10, Email: "alice@example.com", Password: "$2a$10$winnerhash"}

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "c").Return("raw", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw").Return(googleIdentity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(models.User{}, store.ErrNoUserWasFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
			Return(models.User{}, store.ErrEmailAlreadyExists),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(winner, nil),
	)

	user, generated, err := svc.Callback(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, winner, user, "loser must adopt the winner's record")
	assert.Empty(t, generated, "loser's generated password is discarded, never returned")
}

// ── Callback — provider errors ───────────────────────────────────────────────

func TestOAuthService_Callback_ExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().Exchange(ctx, "bad-code").
		Return("", adapter.ErrNoIDToken)

	_, _, err := svc.Callback(ctx, "bad-code")
	assert.ErrorIs(t, err, adapter.ErrNoIDToken)
}

func TestOAuthService_Callback_VerificationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "c").Return("forged.token", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "forged.token").
			Return(adapter.Identity{}, adapter.ErrInvalidIDToken),
	)

	_, _, err := svc.Callback(ctx, "c")
	assert.ErrorIs(t, err, adapter.ErrInvalidIDToken)
}

func TestOAuthService_Callback_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockRepo := newTestOAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")

	gomock.InOrder(
		mockProvider.EXPECT().Exchange(ctx, "c").Return("raw", nil),
		mockProvider.EXPECT().VerifyIDToken(ctx, "raw").Return(googleIdentity, nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(models.User{}, dbErr),
	)

	_, _, err := svc.Callback(ctx, "c")
	assert.ErrorIs(t, err, dbErr)
}
