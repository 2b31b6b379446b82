package usecase

import (
	"context"
	"errors"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"go.uber.org/zap"
)

type SeriesUsecase interface {
	GetTestSeries(ctx context.Context, userID int) ([]domain.SeriesView, error)
	Purchase(ctx context.Context, userID int, seriesID int) (domain.PurchaseResult, error)
}

type seriesUsecase struct {
	seriesRepository domain.SeriesRepository
}

func NewSeriesUsecase(seriesRepository domain.SeriesRepository) SeriesUsecase {
	return &seriesUsecase{
		seriesRepository: seriesRepository,
	}
}

// GetTestSeries selects the read variant by identity: userID 0 means an
// anonymous caller and no purchased flags.
func (uc *seriesUsecase) GetTestSeries(ctx context.Context, userID int) ([]domain.SeriesView, error) {
	if userID > 0 {
		return uc.seriesRepository.GetTestSeriesForUser(ctx, userID)
	}
	return uc.seriesRepository.GetTestSeries(ctx)
}

func (uc *seriesUsecase) Purchase(ctx context.Context, userID int, seriesID int) (domain.PurchaseResult, error) {
	requestID := middleware.GetRequestID(ctx)

	if seriesID <= 0 {
		logger.AccessLogger.Warn("Missing test series ID", zap.String("request_id", requestID))
		return domain.PurchaseResult{}, errors.New("test series ID is required")
	}

	return uc.seriesRepository.Purchase(ctx, userID, seriesID)
}
