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

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) domain.QuizRepository {
	return &quizRepository{
		db: db,
	}
}

func (r *quizRepository) GetCategories(ctx context.Context) ([]domain.CategoryWithTopics, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetCategories called", zap.String("request_id", requestID))

	var categories []domain.CategoryWithTopics
	if err := r.db.Raw(
		"SELECT id, name, description, icon, color FROM categories ORDER BY id",
	).Scan(&categories).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch categories", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch categories")
	}

	var topics []domain.TopicSummary
	if err := r.db.Raw(
		"SELECT t.id, t.category_id, t.name, t.description, COUNT(q.id) AS question_count " +
			"FROM topics t LEFT JOIN questions q ON t.id = q.topic_id " +
			"GROUP BY t.id ORDER BY t.category_id, t.name",
	).Scan(&topics).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch topics", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch topics")
	}

	for i := range categories {
		categories[i].Topics = make([]domain.TopicSummary, 0)
		for _, topic := range topics {
			if topic.CategoryID == categories[i].ID {
				categories[i].Topics = append(categories[i].Topics, topic)
			}
		}
	}

	return categories, nil
}

func (r *quizRepository) GetTopicQuestions(ctx context.Context, topicID int) (domain.TopicQuestionsResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTopicQuestions called", zap.String("request_id", requestID), zap.Int("topic_id", topicID))

	var questions []domain.QuestionView
	if err := r.db.Raw(
		"SELECT q.id, q.topic_id, q.question, q.option_a, q.option_b, q.option_c, q.option_d, "+
			"q.difficulty_level, q.coins_reward "+
			"FROM questions q WHERE q.topic_id = ? ORDER BY q.id",
		topicID,
	).Scan(&questions).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch questions", zap.String("request_id", requestID), zap.Error(err))
		return domain.TopicQuestionsResponse{}, errors.New("failed to fetch questions")
	}

	topic, err := r.fetchTopicInfo(requestID, topicID)
	if err != nil {
		return domain.TopicQuestionsResponse{}, err
	}

	return domain.TopicQuestionsResponse{Topic: topic, Questions: questions}, nil
}

func (r *quizRepository) GetTopicQuestionsForUser(ctx context.Context, topicID int, userID int) (domain.TopicQuestionsResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTopicQuestionsForUser called", zap.String("request_id", requestID), zap.Int("topic_id", topicID), zap.Int("user_id", userID))

	var questions []domain.QuestionView
	if err := r.db.Raw(
		"SELECT q.id, q.topic_id, q.question, q.option_a, q.option_b, q.option_c, q.option_d, "+
			"q.difficulty_level, q.coins_reward, "+
			"CASE WHEN up.id IS NOT NULL THEN true ELSE false END AS attempted, "+
			"up.is_correct AS correct "+
			"FROM questions q "+
			"LEFT JOIN user_progress up ON q.id = up.question_id AND up.user_id = ? "+
			"WHERE q.topic_id = ? ORDER BY q.id",
		userID, topicID,
	).Scan(&questions).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch questions", zap.String("request_id", requestID), zap.Error(err))
		return domain.TopicQuestionsResponse{}, errors.New("failed to fetch questions")
	}

	topic, err := r.fetchTopicInfo(requestID, topicID)
	if err != nil {
		return domain.TopicQuestionsResponse{}, err
	}

	return domain.TopicQuestionsResponse{Topic: topic, Questions: questions}, nil
}

func (r *quizRepository) fetchTopicInfo(requestID string, topicID int) (*domain.TopicInfo, error) {
	var topic domain.TopicInfo
	res := r.db.Raw(
		"SELECT t.id, t.category_id, t.name, t.description, "+
			"c.name AS category_name, c.icon AS category_icon, c.color AS category_color "+
			"FROM topics t JOIN categories c ON t.category_id = c.id WHERE t.id = ?",
		topicID,
	).Scan(&topic)
	if res.Error != nil {
		logger.DBLogger.Error("Failed to fetch topic", zap.String("request_id", requestID), zap.Error(res.Error))
		return nil, errors.New("failed to fetch topic")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &topic, nil
}

type questionAnswerRow struct {
	ID            int
	CorrectOption string
	CoinsReward   int
	Explanation   string
}

func (r *quizRepository) SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (domain.AnswerResult, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("SubmitAnswer called", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("question_id", questionID))

	var result domain.AnswerResult

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var question questionAnswerRow
		res := tx.Raw(
			"SELECT id, correct_option, coins_reward, explanation FROM questions WHERE id = ?",
			questionID,
		).Scan(&question)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to fetch question", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to fetch question")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Warn("Question not found", zap.String("request_id", requestID), zap.Int("question_id", questionID))
			return errors.New("question not found")
		}

		isCorrect := answer == question.CorrectOption

		var existing struct{ ID int }
		res = tx.Raw(
			"SELECT id FROM user_progress WHERE user_id = ? AND question_id = ?",
			userID, questionID,
		).Scan(&existing)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to fetch attempt", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to fetch attempt")
		}
		firstAttempt := res.RowsAffected == 0

		coinsEarned := 0
		if firstAttempt && isCorrect {
			coinsEarned = question.CoinsReward
			if err := tx.Exec(
				"UPDATE users SET coins = coins + ? WHERE id = ?",
				coinsEarned, userID,
			).Error; err != nil {
				logger.DBLogger.Error("Failed to update user coins", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to update user balance")
			}
		}

		if firstAttempt {
			// A concurrent first submission collides on idx_user_question here,
			// rolling the whole transaction (coin credit included) back.
			if err := tx.Exec(
				"INSERT INTO user_progress (user_id, question_id, user_answer, is_correct, coins_earned, attempt_time) "+
					"VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)",
				userID, questionID, answer, isCorrect, coinsEarned,
			).Error; err != nil {
				logger.DBLogger.Error("Failed to insert attempt", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to record attempt")
			}
		} else {
			// Resubmission refreshes the stored answer but never touches coins.
			if err := tx.Exec(
				"UPDATE user_progress SET user_answer = ?, is_correct = ?, attempt_time = CURRENT_TIMESTAMP "+
					"WHERE user_id = ? AND question_id = ?",
				answer, isCorrect, userID, questionID,
			).Error; err != nil {
				logger.DBLogger.Error("Failed to update attempt", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to record attempt")
			}
		}

		result = domain.AnswerResult{
			IsCorrect:     isCorrect,
			CoinsEarned:   coinsEarned,
			CorrectOption: question.CorrectOption,
			Explanation:   question.Explanation,
		}
		return nil
	}); err != nil {
		return domain.AnswerResult{}, err
	}

	logger.DBLogger.Info("Answer settled", zap.String("request_id", requestID), zap.Int("user_id", userID), zap.Int("question_id", questionID), zap.Bool("is_correct", result.IsCorrect), zap.Int("coins_earned", result.CoinsEarned))
	return result, nil
}
