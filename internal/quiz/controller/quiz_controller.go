package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/quiz/usecase"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type QuizHandler struct {
	usecase  usecase.QuizUsecase
	jwtToken middleware.JwtTokenService
}

func NewQuizHandler(usecase usecase.QuizUsecase, jwtToken middleware.JwtTokenService) *QuizHandler {
	return &QuizHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

// authenticate resolves the caller's identity once at the boundary; usecases
// only ever see the resulting user id.
func (h *QuizHandler) authenticate(r *http.Request) (int, error) {
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

// optionalUserID returns 0 for anonymous or unverifiable callers.
func (h *QuizHandler) optionalUserID(r *http.Request) int {
	userID, err := h.authenticate(r)
	if err != nil {
		return 0
	}
	return userID
}

func (h *QuizHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetCategories request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	categories, err := h.usecase.GetCategories(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetCategories request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *QuizHandler) GetTopicQuestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetTopicQuestions request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	topicID, err := strconv.Atoi(mux.Vars(r)["topicId"])
	if err != nil {
		h.handleError(w, errors.New("topic ID is required"), requestID)
		return
	}

	userID := h.optionalUserID(r)

	response, err := h.usecase.GetTopicQuestions(ctx, topicID, userID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetTopicQuestions request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received SubmitAnswer request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	userID, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.AnswerRequest
	if err = json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, errors.New("invalid request body"), requestID)
		return
	}
	data.UserAnswer = sanitizer.Sanitize(data.UserAnswer)

	result, err := h.usecase.SubmitAnswer(ctx, userID, data.QuestionID, data.UserAnswer)
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
	logger.AccessLogger.Info("Completed SubmitAnswer request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK))
}

func (h *QuizHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "question ID and user answer are required", "invalid answer option",
		"topic ID is required", "invalid request body":
		w.WriteHeader(http.StatusBadRequest)
	case "Missing JWT-Token header", "Invalid JWT token":
		w.WriteHeader(http.StatusUnauthorized)
	case "question not found":
		w.WriteHeader(http.StatusNotFound)
	case "failed to fetch question", "failed to fetch attempt", "failed to update user balance",
		"failed to record attempt", "failed to fetch categories", "failed to fetch topics",
		"failed to fetch questions", "failed to fetch topic":
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
