package domain

import (
	"context"
	"time"
)

type Category struct {
	ID          int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description"`
	Icon        string `gorm:"type:varchar(100);column:icon" json:"icon"`
	Color       string `gorm:"type:varchar(50);column:color" json:"color"`
}

type Topic struct {
	ID          int      `gorm:"primary_key;auto_increment;column:id" json:"id"`
	CategoryID  int      `gorm:"column:category_id;not null" json:"category_id"`
	Name        string   `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string   `gorm:"type:text;column:description" json:"description"`
	Category    Category `gorm:"foreignkey:CategoryID;references:ID" json:"-"`
}

type Question struct {
	ID              int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	TopicID         int    `gorm:"column:topic_id;not null" json:"topic_id"`
	Question        string `gorm:"type:text;not null;column:question" json:"question"`
	OptionA         string `gorm:"type:text;not null;column:option_a" json:"option_a"`
	OptionB         string `gorm:"type:text;not null;column:option_b" json:"option_b"`
	OptionC         string `gorm:"type:text;not null;column:option_c" json:"option_c"`
	OptionD         string `gorm:"type:text;not null;column:option_d" json:"option_d"`
	CorrectOption   string `gorm:"type:varchar(1);not null;column:correct_option" json:"-"`
	DifficultyLevel string `gorm:"type:varchar(20);column:difficulty_level" json:"difficulty_level"`
	CoinsReward     int    `gorm:"type:int;default:0;column:coins_reward" json:"coins_reward"`
	Explanation     string `gorm:"type:text;column:explanation" json:"-"`
	TestSeriesID    int    `gorm:"column:test_series_id;default:null" json:"-"`
	Topic           Topic  `gorm:"foreignkey:TopicID;references:ID" json:"-"`
}

type UserProgress struct {
	ID          int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	UserID      int       `gorm:"column:user_id;not null;index:idx_user_question,unique" json:"user_id"`
	QuestionID  int       `gorm:"column:question_id;not null;index:idx_user_question,unique" json:"question_id"`
	UserAnswer  string    `gorm:"type:varchar(1);not null;column:user_answer" json:"user_answer"`
	IsCorrect   bool      `gorm:"column:is_correct;not null" json:"is_correct"`
	CoinsEarned int       `gorm:"type:int;default:0;column:coins_earned" json:"coins_earned"`
	AttemptTime time.Time `gorm:"column:attempt_time" json:"attempt_time"`
	User        User      `gorm:"foreignkey:UserID;references:ID" json:"-"`
	Question    Question  `gorm:"foreignkey:QuestionID;references:ID" json:"-"`
}

type TopicSummary struct {
	ID            int    `json:"id"`
	CategoryID    int    `json:"category_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

type CategoryWithTopics struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Color       string         `json:"color"`
	Topics      []TopicSummary `gorm:"-" json:"topics"`
}

type TopicInfo struct {
	ID            int    `json:"id"`
	CategoryID    int    `json:"category_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryName  string `json:"category_name"`
	CategoryIcon  string `json:"category_icon"`
	CategoryColor string `json:"category_color"`
}

type QuestionView struct {
	ID              int    `json:"id"`
	TopicID         int    `json:"topic_id"`
	Question        string `json:"question"`
	OptionA         string `json:"option_a"`
	OptionB         string `json:"option_b"`
	OptionC         string `json:"option_c"`
	OptionD         string `json:"option_d"`
	DifficultyLevel string `json:"difficulty_level"`
	CoinsReward     int    `json:"coins_reward"`
	Attempted       bool   `json:"attempted"`
	Correct         *bool  `json:"correct"`
}

type TopicQuestionsResponse struct {
	Topic     *TopicInfo     `json:"topic"`
	Questions []QuestionView `json:"questions"`
}

type AnswerRequest struct {
	QuestionID int    `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

type AnswerResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CoinsEarned   int    `json:"coinsEarned"`
	CorrectOption string `json:"correctOption"`
	Explanation   string `json:"explanation"`
}

type QuizRepository interface {
	GetCategories(ctx context.Context) ([]CategoryWithTopics, error)
	GetTopicQuestions(ctx context.Context, topicID int) (TopicQuestionsResponse, error)
	GetTopicQuestionsForUser(ctx context.Context, topicID int, userID int) (TopicQuestionsResponse, error)
	SubmitAnswer(ctx context.Context, userID int, questionID int, answer string) (AnswerResult, error)
}
