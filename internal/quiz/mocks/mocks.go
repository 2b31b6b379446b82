package mocks

import (
	"context"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockQuizUsecase struct {
	mock.Mock
}

func (m *MockQuizUsecase) GetCategories(ctx context.Context) ([]domain.CategoryWithTopics, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.CategoryWithTopics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizUsecase) GetTopicQuestions(ctx context.Context, topicID int, userID int) (domain.TopicQuestionsResponse, error) {
	args := m.Called(ctx, topicID, userID)
	return args.Get(0).(domain.TopicQuestionsResponse), args.Error(1)
}

func (m *MockQuizUsecase) SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (domain.AnswerResult, error) {
	args := m.Called(ctx, userID, questionID, answer)
	return args.Get(0).(domain.AnswerResult), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetCategories(ctx context.Context) ([]domain.CategoryWithTopics, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.CategoryWithTopics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) GetTopicQuestions(ctx context.Context, topicID int) (domain.TopicQuestionsResponse, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).(domain.TopicQuestionsResponse), args.Error(1)
}

func (m *MockQuizRepository) GetTopicQuestionsForUser(ctx context.Context, topicID int, userID int) (domain.TopicQuestionsResponse, error) {
	args := m.Called(ctx, topicID, userID)
	return args.Get(0).(domain.TopicQuestionsResponse), args.Error(1)
}

func (m *MockQuizRepository) SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (domain.AnswerResult, error) {
	args := m.Called(ctx, userID, questionID, answer)
	return args.Get(0).(domain.AnswerResult), args.Error(1)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(userID int, tokenExpTime int64) (string, error) {
	args := m.Called(userID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}
