package usecase

import (
	"context"
	"strings"
	"testing"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/profile/mocks"
	"aptitude_quiz/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetProfiles(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	ctx := context.Background()
	profile := domain.UserProfile{ID: 7, Username: "alice", Email: "alice@example.com"}

	t.Run("Own Profile Includes Email", func(t *testing.T) {
		mockRepo := new(mocks.MockProfileRepository)
		uc := NewProfileUsecase(mockRepo)
		mockRepo.On("GetProfile", ctx, 7, true).Return(profile, nil)

		result, err := uc.GetOwnProfile(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, profile, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Public Profile Excludes Email", func(t *testing.T) {
		mockRepo := new(mocks.MockProfileRepository)
		uc := NewProfileUsecase(mockRepo)
		public := profile
		public.Email = ""
		mockRepo.On("GetProfile", ctx, 7, false).Return(public, nil)

		result, err := uc.GetPublicProfile(ctx, 7)
		assert.NoError(t, err)
		assert.Empty(t, result.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail - Missing User ID", func(t *testing.T) {
		mockRepo := new(mocks.MockProfileRepository)
		uc := NewProfileUsecase(mockRepo)

		_, err := uc.GetPublicProfile(ctx, 0)
		assert.Error(t, err)
		assert.Equal(t, "user ID is required", err.Error())
	})
}

func TestUpdateProfile(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockProfileRepository)
		uc := NewProfileUsecase(mockRepo)
		mockRepo.On("UpdateProfile", ctx, 7, "Alice B", "avatar.png").Return(nil)

		err := uc.UpdateProfile(ctx, 7, domain.UpdateProfileRequest{FullName: "Alice B", ProfilePicture: "avatar.png"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail - Name Too Long", func(t *testing.T) {
		mockRepo := new(mocks.MockProfileRepository)
		uc := NewProfileUsecase(mockRepo)

		err := uc.UpdateProfile(ctx, 7, domain.UpdateProfileRequest{FullName: strings.Repeat("a", 256)})
		assert.Error(t, err)
		assert.Equal(t, "Input exceeds character limit", err.Error())
	})
}
