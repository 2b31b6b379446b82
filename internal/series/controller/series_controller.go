package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/series/usecase"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"go.uber.org/zap"
)

type SeriesHandler struct {
	usecase  usecase.SeriesUsecase
	jwtToken middleware.JwtTokenService
}

func NewSeriesHandler(usecase usecase.SeriesUsecase, jwtToken middleware.JwtTokenService) *SeriesHandler {
	return &SeriesHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *SeriesHandler) authenticate(r *http.Request) (int, error) {
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

func (h *SeriesHandler) optionalUserID(r *http.Request) int {
	userID, err := h.authenticate(r)
	if err != nil {
		return 0
	}
	return userID
}

func (h *SeriesHandler) GetTestSeries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetTestSeries request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID := h.optionalUserID(r)

	series, err := h.usecase.GetTestSeries(ctx, userID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(series); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetTestSeries request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *SeriesHandler) PurchaseTestSeries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received PurchaseTestSeries request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.PurchaseRequest
	if err = json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, errors.New("invalid request body"), requestID)
		return
	}

	result, err := h.usecase.Purchase(ctx, userID, data.TestSeriesID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed PurchaseTestSeries request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *SeriesHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "test series ID is required", "not enough coins", "invalid request body":
		w.WriteHeader(http.StatusBadRequest)
	case "Missing JWT-Token header", "Invalid JWT token":
		w.WriteHeader(http.StatusUnauthorized)
	case "test series not found", "user not found":
		w.WriteHeader(http.StatusNotFound)
	case "test series already purchased":
		w.WriteHeader(http.StatusConflict)
	case "failed to check purchase", "failed to fetch test series", "failed to fetch user",
		"failed to update user balance", "failed to record purchase":
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
