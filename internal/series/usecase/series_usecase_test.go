package usecase

import (
	"context"
	"testing"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/series/mocks"
	"aptitude_quiz/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPurchase(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	ctx := context.Background()
	expected := domain.PurchaseResult{
		Message:        "Successfully purchased Algebra Sprint",
		RemainingCoins: 30,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockSeriesRepository)
		uc := NewSeriesUsecase(mockRepo)
		mockRepo.On("Purchase", ctx, 7, 3).Return(expected, nil)

		result, err := uc.Purchase(ctx, 7, 3)
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail - Missing Series ID", func(t *testing.T) {
		mockRepo := new(mocks.MockSeriesRepository)
		uc := NewSeriesUsecase(mockRepo)

		_, err := uc.Purchase(ctx, 7, 0)
		assert.Error(t, err)
		assert.Equal(t, "test series ID is required", err.Error())
	})
}

func TestGetTestSeries(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	ctx := context.Background()
	series := []domain.SeriesView{
		{ID: 3, Name: "Algebra Sprint", CoinCost: 20, QuestionCount: 25},
	}

	t.Run("Anonymous Caller Uses Plain Variant", func(t *testing.T) {
		mockRepo := new(mocks.MockSeriesRepository)
		uc := NewSeriesUsecase(mockRepo)
		mockRepo.On("GetTestSeries", ctx).Return(series, nil)

		result, err := uc.GetTestSeries(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, series, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Authenticated Caller Uses Purchased Variant", func(t *testing.T) {
		mockRepo := new(mocks.MockSeriesRepository)
		uc := NewSeriesUsecase(mockRepo)
		mockRepo.On("GetTestSeriesForUser", ctx, 7).Return(series, nil)

		result, err := uc.GetTestSeries(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, series, result)
		mockRepo.AssertExpectations(t)
	})
}
