package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/profile/usecase"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	usecase  usecase.ProfileUsecase
	jwtToken middleware.JwtTokenService
}

func NewProfileHandler(usecase usecase.ProfileUsecase, jwtToken middleware.JwtTokenService) *ProfileHandler {
	return &ProfileHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *ProfileHandler) authenticate(r *http.Request) (int, error) {
	authHeader := r.Header.Get("JWT-Token")
	if authHeader == "" {
		return 0, errors.New("Missing JWT-Token header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		return 0, errors.New("Invalid JWT token")
	}
	return claims.UserID, nil
}

func (h *ProfileHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetLeaderboard request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	entries, err := h.usecase.GetLeaderboard(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetLeaderboard request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetProfile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	profile, err := h.usecase.GetOwnProfile(ctx, userID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetProfile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *ProfileHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetUserProfile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		h.handleError(w, errors.New("user ID is required"), requestID)
		return
	}

	profile, err := h.usecase.GetPublicProfile(ctx, userID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetUserProfile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateProfile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var req domain.UpdateProfileRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, errors.New("invalid request body"), requestID)
		return
	}
	req.FullName = sanitizer.Sanitize(req.FullName)
	req.ProfilePicture = sanitizer.Sanitize(req.ProfilePicture)

	if err := h.usecase.UpdateProfile(ctx, userID, req); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Profile updated successfully"}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed UpdateProfile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *ProfileHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "user ID is required", "Input exceeds character limit", "invalid request body":
		w.WriteHeader(http.StatusBadRequest)
	case "Missing JWT-Token header", "Invalid JWT token":
		w.WriteHeader(http.StatusUnauthorized)
	case "user not found":
		w.WriteHeader(http.StatusNotFound)
	case "failed to fetch leaderboard", "failed to fetch user", "failed to fetch progress stats",
		"failed to fetch rank", "failed to update profile":
		w.WriteHeader(http.StatusInternalServerError)
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
