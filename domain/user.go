package domain

import (
	"context"
	"time"
)

type User struct {
	ID             int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Username       string    `gorm:"type:varchar(50);unique;not null;column:username" json:"username"`
	Email          string    `gorm:"type:varchar(255);unique;not null;column:email" json:"email"`
	Password       string    `gorm:"type:varchar(255);not null;column:password" json:"-"`
	FullName       string    `gorm:"type:varchar(255);column:full_name" json:"full_name"`
	ProfilePicture string    `gorm:"type:varchar(512);column:profile_picture" json:"profile_picture"`
	Coins          int       `gorm:"type:int;default:0;column:coins" json:"coins"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LeaderboardEntry struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"`
	Coins          int    `json:"coins"`
	Rank           int    `json:"rank"`
}

type ProfileStats struct {
	TotalQuestions int `json:"totalQuestions"`
	CorrectAnswers int `json:"correctAnswers"`
	Rank           int `json:"rank"`
}

type UserProfile struct {
	ID             int          `json:"id"`
	Username       string       `json:"username"`
	Email          string       `json:"email,omitempty"`
	FullName       string       `json:"full_name"`
	ProfilePicture string       `json:"profile_picture"`
	Coins          int          `json:"coins"`
	CreatedAt      time.Time    `json:"created_at"`
	Stats          ProfileStats `gorm:"-" json:"stats"`
}

type UpdateProfileRequest struct {
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"`
}

type AuthRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

type ProfileRepository interface {
	GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	GetProfile(ctx context.Context, userID int, includeEmail bool) (UserProfile, error)
	UpdateProfile(ctx context.Context, userID int, fullName string, profilePicture string) error
}
