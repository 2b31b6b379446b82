package usecase

import (
	"context"
	"errors"
	"strings"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"
	"aptitude_quiz/internal/service/validation"

	"go.uber.org/zap"
)

type QuizUsecase interface {
	GetCategories(ctx context.Context) ([]domain.CategoryWithTopics, error)
	GetTopicQuestions(ctx context.Context, topicID int, userID int) (domain.TopicQuestionsResponse, error)
	SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (domain.AnswerResult, error)
}

type quizUsecase struct {
	quizRepository domain.QuizRepository
}

func NewQuizUsecase(quizRepository domain.QuizRepository) QuizUsecase {
	return &quizUsecase{
		quizRepository: quizRepository,
	}
}

func (uc *quizUsecase) GetCategories(ctx context.Context) ([]domain.CategoryWithTopics, error) {
	return uc.quizRepository.GetCategories(ctx)
}

// GetTopicQuestions selects the read variant by identity: userID 0 means an
// anonymous caller and no per-user progress columns.
func (uc *quizUsecase) GetTopicQuestions(ctx context.Context, topicID int, userID int) (domain.TopicQuestionsResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	if topicID <= 0 {
		logger.AccessLogger.Warn("Missing topic ID", zap.String("request_id", requestID))
		return domain.TopicQuestionsResponse{}, errors.New("topic ID is required")
	}

	if userID > 0 {
		return uc.quizRepository.GetTopicQuestionsForUser(ctx, topicID, userID)
	}
	return uc.quizRepository.GetTopicQuestions(ctx, topicID)
}

func (uc *quizUsecase) SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (domain.AnswerResult, error) {
	requestID := middleware.GetRequestID(ctx)

	if questionID <= 0 || answer == "" {
		logger.AccessLogger.Warn("Missing answer fields", zap.String("request_id", requestID))
		return domain.AnswerResult{}, errors.New("question ID and user answer are required")
	}

	normalized := strings.ToUpper(strings.TrimSpace(answer))
	if !validation.ValidateOption(normalized) {
		logger.AccessLogger.Warn("Invalid answer option", zap.String("request_id", requestID), zap.Int("question_id", questionID))
		return domain.AnswerResult{}, errors.New("invalid answer option")
	}

	return uc.quizRepository.SubmitAnswer(ctx, userID, questionID, normalized)
}
