package usecase

import (
	"context"
	"errors"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"go.uber.org/zap"
)

type ProfileUsecase interface {
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	GetOwnProfile(ctx context.Context, userID int) (domain.UserProfile, error)
	GetPublicProfile(ctx context.Context, userID int) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int, req domain.UpdateProfileRequest) error
}

type profileUsecase struct {
	profileRepository domain.ProfileRepository
}

func NewProfileUsecase(profileRepository domain.ProfileRepository) ProfileUsecase {
	return &profileUsecase{
		profileRepository: profileRepository,
	}
}

func (uc *profileUsecase) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return uc.profileRepository.GetLeaderboard(ctx)
}

func (uc *profileUsecase) GetOwnProfile(ctx context.Context, userID int) (domain.UserProfile, error) {
	return uc.profileRepository.GetProfile(ctx, userID, true)
}

func (uc *profileUsecase) GetPublicProfile(ctx context.Context, userID int) (domain.UserProfile, error) {
	requestID := middleware.GetRequestID(ctx)
	if userID <= 0 {
		logger.AccessLogger.Warn("Missing user ID", zap.String("request_id", requestID))
		return domain.UserProfile{}, errors.New("user ID is required")
	}
	return uc.profileRepository.GetProfile(ctx, userID, false)
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, userID int, req domain.UpdateProfileRequest) error {
	requestID := middleware.GetRequestID(ctx)
	const maxLen = 255
	if len(req.FullName) > maxLen || len(req.ProfilePicture) > 512 {
		logger.AccessLogger.Warn("Input exceeds character limit", zap.String("request_id", requestID))
		return errors.New("Input exceeds character limit")
	}
	return uc.profileRepository.UpdateProfile(ctx, userID, req.FullName, req.ProfilePicture)
}
