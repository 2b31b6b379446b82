package domain

import (
	"context"
	"time"
)

type TestSeries struct {
	ID          int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CoinCost    int       `gorm:"type:int;default:0;column:coin_cost" json:"coin_cost"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

type UserTestSeries struct {
	ID           int        `gorm:"primary_key;auto_increment;column:id" json:"id"`
	UserID       int        `gorm:"column:user_id;not null;index:idx_user_series,unique" json:"user_id"`
	TestSeriesID int        `gorm:"column:test_series_id;not null;index:idx_user_series,unique" json:"test_series_id"`
	User         User       `gorm:"foreignkey:UserID;references:ID" json:"-"`
	TestSeries   TestSeries `gorm:"foreignkey:TestSeriesID;references:ID" json:"-"`
}

type SeriesView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CoinCost      int    `json:"coin_cost"`
	QuestionCount int    `json:"question_count"`
	Purchased     bool   `json:"purchased"`
}

type PurchaseRequest struct {
	TestSeriesID int `json:"testSeriesId"`
}

type PurchaseResult struct {
	Message        string `json:"message"`
	RemainingCoins int    `json:"remainingCoins"`
}

type SeriesRepository interface {
	GetTestSeries(ctx context.Context) ([]SeriesView, error)
	GetTestSeriesForUser(ctx context.Context, userID int) ([]SeriesView, error)
	Purchase(ctx context.Context, userID int, seriesID int) (PurchaseResult, error)
}
