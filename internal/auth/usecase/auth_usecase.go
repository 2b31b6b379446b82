package usecase

import (
	"context"
	"errors"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"
	"aptitude_quiz/internal/service/validation"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, req domain.RegisterRequest) error
	LoginUser(ctx context.Context, username string, password string) (int, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, req domain.RegisterRequest) error {
	requestID := middleware.GetRequestID(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		logger.AccessLogger.Warn("Missing registration fields", zap.String("request_id", requestID))
		return errors.New("username, email and password are required")
	}
	if !validation.ValidateUsername(req.Username) {
		logger.AccessLogger.Warn("not correct username", zap.String("request_id", requestID))
		return errors.New("not correct username")
	}
	if !validation.ValidateEmail(req.Email) {
		logger.AccessLogger.Warn("not correct email", zap.String("request_id", requestID))
		return errors.New("not correct email")
	}
	if !validation.ValidatePassword(req.Password) {
		logger.AccessLogger.Warn("not correct password", zap.String("request_id", requestID))
		return errors.New("not correct password")
	}

	hashed, err := middleware.HashPassword(req.Password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to create user")
	}

	user := domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
	}
	return uc.authRepository.CreateUser(ctx, &user)
}

func (uc *authUsecase) LoginUser(ctx context.Context, username string, password string) (int, error) {
	requestID := middleware.GetRequestID(ctx)
	const maxLen = 100
	if len(username) > maxLen || len(password) > maxLen {
		logger.AccessLogger.Warn("Input exceeds character limit", zap.String("request_id", requestID))
		return 0, errors.New("Input exceeds character limit")
	}
	if username == "" || password == "" {
		logger.AccessLogger.Warn("Missing login fields", zap.String("request_id", requestID))
		return 0, errors.New("username and password are required")
	}

	user, err := uc.authRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	if !middleware.CheckPassword(user.Password, password) {
		logger.AccessLogger.Warn("Password mismatch", zap.String("request_id", requestID), zap.String("username", username))
		return 0, errors.New("invalid credentials")
	}

	return user.ID, nil
}
