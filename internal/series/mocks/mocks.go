package mocks

import (
	"context"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockSeriesUsecase struct {
	mock.Mock
}

func (m *MockSeriesUsecase) GetTestSeries(ctx context.Context, userID int) ([]domain.SeriesView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SeriesView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSeriesUsecase) Purchase(ctx context.Context, userID int, seriesID int) (domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, seriesID)
	return args.Get(0).(domain.PurchaseResult), args.Error(1)
}

type MockSeriesRepository struct {
	mock.Mock
}

func (m *MockSeriesRepository) GetTestSeries(ctx context.Context) ([]domain.SeriesView, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SeriesView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSeriesRepository) GetTestSeriesForUser(ctx context.Context, userID int) ([]domain.SeriesView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SeriesView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSeriesRepository) Purchase(ctx context.Context, userID int, seriesID int) (domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, seriesID)
	return args.Get(0).(domain.PurchaseResult), args.Error(1)
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
