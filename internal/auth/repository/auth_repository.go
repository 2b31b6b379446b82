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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) CreateUser(ctx context.Context, user *domain.User) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("username", user.Username))

	var count int64
	if err := r.db.Raw("SELECT COUNT(*) FROM users WHERE username = ? OR email = ?", user.Username, user.Email).Scan(&count).Error; err != nil {
		logger.DBLogger.Error("Failed to check existing users", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to create user")
	}
	if count > 0 {
		logger.DBLogger.Warn("Duplicate registration", zap.String("request_id", requestID), zap.String("username", user.Username))
		return errors.New("username or email already exists")
	}

	if err := r.db.Exec(
		"INSERT INTO users (username, email, password, full_name, coins, created_at) VALUES (?, ?, ?, ?, 0, CURRENT_TIMESTAMP)",
		user.Username, user.Email, user.Password, user.FullName,
	).Error; err != nil {
		logger.DBLogger.Error("Failed to insert user", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to create user")
	}

	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("username", user.Username))
	return nil
}

func (r *authRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByUsername called", zap.String("request_id", requestID), zap.String("username", username))

	var user domain.User
	res := r.db.Raw(
		"SELECT id, username, email, password, full_name, profile_picture, coins, created_at FROM users WHERE username = ?",
		username,
	).Scan(&user)
	if res.Error != nil {
		logger.DBLogger.Error("Failed to fetch user", zap.String("request_id", requestID), zap.Error(res.Error))
		return nil, errors.New("failed to fetch user")
	}
	if res.RowsAffected == 0 {
		logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	return &user, nil
}
