package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "leaderboard:top50"
	leaderboardCacheTTL = 30 * time.Second
)

type profileRepository struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewProfileRepository accepts a nil cache client; reads then go straight to
// Postgres.
func NewProfileRepository(db *gorm.DB, cache *redis.Client) domain.ProfileRepository {
	return &profileRepository{
		db:    db,
		cache: cache,
	}
}

func (r *profileRepository) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetLeaderboard called", zap.String("request_id", requestID))

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []domain.LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			logger.DBLogger.Warn("Failed to decode cached leaderboard", zap.String("request_id", requestID), zap.Error(err))
		} else if err != redis.Nil {
			logger.DBLogger.Warn("Leaderboard cache read failed", zap.String("request_id", requestID), zap.Error(err))
		}
	}

	var entries []domain.LeaderboardEntry
	if err := r.db.Raw(
		"SELECT u.id, u.username, u.full_name, u.profile_picture, u.coins, " +
			"(SELECT COUNT(*) + 1 FROM users o WHERE o.coins > u.coins) AS rank " +
			"FROM users u ORDER BY u.coins DESC LIMIT 50",
	).Scan(&entries).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch leaderboard", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch leaderboard")
	}

	if r.cache != nil {
		if encoded, err := json.Marshal(entries); err == nil {
			if err := r.cache.Set(ctx, leaderboardCacheKey, encoded, leaderboardCacheTTL).Err(); err != nil {
				logger.DBLogger.Warn("Leaderboard cache write failed", zap.String("request_id", requestID), zap.Error(err))
			}
		}
	}

	return entries, nil
}

func (r *profileRepository) GetProfile(ctx context.Context, userID int, includeEmail bool) (domain.UserProfile, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetProfile called", zap.String("request_id", requestID), zap.Int("user_id", userID))

	var profile domain.UserProfile

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(
			"SELECT id, username, email, full_name, profile_picture, coins, created_at FROM users WHERE id = ?",
			userID,
		).Scan(&profile)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to fetch user", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to fetch user")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Int("user_id", userID))
			return errors.New("user not found")
		}

		var stats struct {
			TotalQuestions int
			CorrectAnswers int
		}
		if err := tx.Raw(
			"SELECT COUNT(up.id) AS total_questions, "+
				"COALESCE(SUM(CASE WHEN up.is_correct THEN 1 ELSE 0 END), 0) AS correct_answers "+
				"FROM user_progress up WHERE up.user_id = ?",
			userID,
		).Scan(&stats).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch progress stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch progress stats")
		}

		var rank struct{ Rank int }
		if err := tx.Raw(
			"SELECT (SELECT COUNT(*) + 1 FROM users o WHERE o.coins > u.coins) AS rank FROM users u WHERE u.id = ?",
			userID,
		).Scan(&rank).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch rank", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch rank")
		}

		profile.Stats = domain.ProfileStats{
			TotalQuestions: stats.TotalQuestions,
			CorrectAnswers: stats.CorrectAnswers,
			Rank:           rank.Rank,
		}
		return nil
	}); err != nil {
		return domain.UserProfile{}, err
	}

	if !includeEmail {
		profile.Email = ""
	}

	return profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, userID int, fullName string, profilePicture string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateProfile called", zap.String("request_id", requestID), zap.Int("user_id", userID))

	res := r.db.Exec(
		"UPDATE users SET full_name = ?, profile_picture = ? WHERE id = ?",
		fullName, profilePicture, userID,
	)
	if res.Error != nil {
		logger.DBLogger.Error("Failed to update profile", zap.String("request_id", requestID), zap.Error(res.Error))
		return errors.New("failed to update profile")
	}
	if res.RowsAffected == 0 {
		logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Int("user_id", userID))
		return errors.New("user not found")
	}

	logger.DBLogger.Info("Profile updated", zap.String("request_id", requestID), zap.Int("user_id", userID))
	return nil
}
