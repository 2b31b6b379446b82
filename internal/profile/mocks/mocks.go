package mocks

import (
	"context"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) GetOwnProfile(ctx context.Context, userID int) (domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *MockProfileUsecase) GetPublicProfile(ctx context.Context, userID int) (domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, userID int, req domain.UpdateProfileRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID int, includeEmail bool) (domain.UserProfile, error) {
	args := m.Called(ctx, userID, includeEmail)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, userID int, fullName string, profilePicture string) error {
	args := m.Called(ctx, userID, fullName, profilePicture)
	return args.Error(0)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(userID int, tokenExpTime int64) (string, error) {
	args := m.Called(userID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}
