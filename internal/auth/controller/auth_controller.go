package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/auth/usecase"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase  usecase.AuthUsecase
	jwtToken middleware.JwtTokenService
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService) *AuthHandler {
	return &AuthHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received RegisterUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, errors.New("invalid request body"), requestID)
		return
	}

	req.Username = sanitizer.Sanitize(req.Username)
	req.Email = sanitizer.Sanitize(req.Email)
	req.FullName = sanitizer.Sanitize(req.FullName)

	if err := h.usecase.RegisterUser(ctx, req); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed RegisterUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received LoginUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.handleError(w, errors.New("invalid request body"), requestID)
		return
	}

	creds.Username = sanitizer.Sanitize(creds.Username)

	userID, err := h.usecase.LoginUser(ctx, creds.Username, creds.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	tokenExpTime := time.Now().Add(24 * time.Hour).Unix()
	jwtToken, err := h.jwtToken.Create(userID, tokenExpTime)
	if err != nil {
		logger.AccessLogger.Error("Failed to create JWT token",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"token": jwtToken,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed LoginUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "username, email and password are required", "username and password are required",
		"not correct username", "not correct email", "not correct password",
		"Input exceeds character limit", "invalid request body":
		w.WriteHeader(http.StatusBadRequest)
	case "invalid credentials":
		w.WriteHeader(http.StatusUnauthorized)
	case "username or email already exists":
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
