package repository

import (
	"context"
	"errors"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) domain.SeriesRepository {
	return &seriesRepository{
		db: db,
	}
}

func (r *seriesRepository) GetTestSeries(ctx context.Context) ([]domain.SeriesView, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTestSeries called", zap.String("request_id", requestID))

	var series []domain.SeriesView
	if err := r.db.Raw(
		"SELECT ts.id, ts.name, ts.description, ts.coin_cost, COUNT(q.id) AS question_count " +
			"FROM test_series ts LEFT JOIN questions q ON ts.id = q.test_series_id " +
			"GROUP BY ts.id ORDER BY ts.name",
	).Scan(&series).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch test series", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch test series")
	}

	return series, nil
}

func (r *seriesRepository) GetTestSeriesForUser(ctx context.Context, userID int) ([]domain.SeriesView, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTestSeriesForUser called", zap.String("request_id", requestID), zap.Int("user_id", userID))

	var series []domain.SeriesView
	if err := r.db.Raw(
		"SELECT ts.id, ts.name, ts.description, ts.coin_cost, COUNT(q.id) AS question_count, "+
			"CASE WHEN uts.id IS NOT NULL THEN true ELSE false END AS purchased "+
			"FROM test_series ts "+
			"LEFT JOIN questions q ON ts.id = q.test_series_id "+
			"LEFT JOIN user_test_series uts ON ts.id = uts.test_series_id AND uts.user_id = ? "+
			"GROUP BY ts.id, uts.id ORDER BY ts.name",
		userID,
	).Scan(&series).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch test series", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch test series")
	}

	return series, nil
}

type seriesRow struct {
	ID       int
	Name     string
	CoinCost int
}

func (r *seriesRepository) Purchase(ctx context.Context, userID int, seriesID int) (domain.PurchaseResult, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Purchase called", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("series_id", seriesID))

	var result domain.PurchaseResult

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing struct{ ID int }
		res := tx.Raw(
			"SELECT id FROM user_test_series WHERE user_id = ? AND test_series_id = ?",
			userID, seriesID,
		).Scan(&existing)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to check entitlement", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to check purchase")
		}
		if res.RowsAffected > 0 {
			logger.DBLogger.Warn("Series already purchased", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("series_id", seriesID))
			return errors.New("test series already purchased")
		}

		var series seriesRow
		res = tx.Raw(
			"SELECT id, name, coin_cost FROM test_series WHERE id = ?",
			seriesID,
		).Scan(&series)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to fetch test series", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to fetch test series")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Warn("Series not found", zap.String("request_id", requestID), zap.Int("series_id", seriesID))
			return errors.New("test series not found")
		}

		var user struct {
			ID    int
			Coins int
		}
		res = tx.Raw("SELECT id, coins FROM users WHERE id = ?", userID).Scan(&user)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to fetch user", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to fetch user")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Int("user_id", userID))
			return errors.New("user not found")
		}

		if user.Coins < series.CoinCost {
			logger.DBLogger.Warn("Not enough coins", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("coins", user.Coins), zap.Int("cost", series.CoinCost))
			return errors.New("not enough coins")
		}

		// The coins >= cost guard re-checks affordability at write time, so a
		// concurrent purchase that drained the balance after the read above
		// ends here with zero rows affected instead of a double debit.
		debit := tx.Exec(
			"UPDATE users SET coins = coins - ? WHERE id = ? AND coins >= ?",
			series.CoinCost, userID, series.CoinCost,
		)
		if debit.Error != nil {
			logger.DBLogger.Error("Failed to debit user", zap.String("request_id", requestID), zap.Error(debit.Error))
			return errors.New("failed to update user balance")
		}
		if debit.RowsAffected == 0 {
			logger.DBLogger.Warn("Debit guard rejected purchase", zap.String("request_id", requestID), zap.Int("user_id", userID))
			return errors.New("not enough coins")
		}

		if err := tx.Exec(
			"INSERT INTO user_test_series (user_id, test_series_id) VALUES (?, ?)",
			userID, seriesID,
		).Error; err != nil {
			logger.DBLogger.Error("Failed to insert entitlement", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to record purchase")
		}

		result = domain.PurchaseResult{
			Message:        "Successfully purchased " + series.Name,
			RemainingCoins: user.Coins - series.CoinCost,
		}
		return nil
	}); err != nil {
		return domain.PurchaseResult{}, err
	}

	logger.DBLogger.Info("Series purchased", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("series_id", seriesID), zap.Int("remaining_coins", result.RemainingCoins))
	return result, nil
}
