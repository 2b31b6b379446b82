package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/profile/mocks"
	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func createTestRequest(method, url string, body []byte) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	return r, w
}

func TestGetLeaderboard(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		entries := []domain.LeaderboardEntry{
			{ID: 1, Username: "alice", Coins: 50, Rank: 1},
			{ID: 2, Username: "bob", Coins: 30, Rank: 2},
		}
		mockUsecase.On("GetLeaderboard", mock.Anything).Return(entries, nil)

		r, w := createTestRequest(http.MethodGet, "/api/leaderboard", nil)
		h.GetLeaderboard(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []domain.LeaderboardEntry
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, entries, result)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		mockUsecase.On("GetLeaderboard", mock.Anything).
			Return(nil, errors.New("failed to fetch leaderboard"))

		r, w := createTestRequest(http.MethodGet, "/api/leaderboard", nil)
		h.GetLeaderboard(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetProfile(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - Own Profile", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		claims := &middleware.JwtClaims{UserID: 7, StandardClaims: jwt.StandardClaims{ExpiresAt: 86400}}
		mockJWT.On("Validate", "valid_token").Return(claims, nil)
		mockUsecase.On("GetOwnProfile", mock.Anything, 7).
			Return(domain.UserProfile{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

		r, w := createTestRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("JWT-Token", "Bearer valid_token")

		h.GetProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var profile domain.UserProfile
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
		assert.Equal(t, "alice@example.com", profile.Email)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Missing JWT Token", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		r, w := createTestRequest(http.MethodGet, "/api/profile", nil)
		h.GetProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetUserProfile(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - Email Hidden", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		mockUsecase.On("GetPublicProfile", mock.Anything, 9).
			Return(domain.UserProfile{ID: 9, Username: "bob"}, nil)

		r, w := createTestRequest(http.MethodGet, "/api/users/9", nil)
		r = mux.SetURLVars(r, map[string]string{"userId": "9"})

		h.GetUserProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var profile domain.UserProfile
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
		assert.Empty(t, profile.Email)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - User Not Found", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		mockUsecase.On("GetPublicProfile", mock.Anything, 99).
			Return(domain.UserProfile{}, errors.New("user not found"))

		r, w := createTestRequest(http.MethodGet, "/api/users/99", nil)
		r = mux.SetURLVars(r, map[string]string{"userId": "99"})

		h.GetUserProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Failure - Non-Numeric User ID", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		r, w := createTestRequest(http.MethodGet, "/api/users/abc", nil)
		r = mux.SetURLVars(r, map[string]string{"userId": "abc"})

		h.GetUserProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateProfile(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		requestBody := domain.UpdateProfileRequest{FullName: "Alice B", ProfilePicture: "avatar.png"}
		body, _ := json.Marshal(requestBody)

		claims := &middleware.JwtClaims{UserID: 7, StandardClaims: jwt.StandardClaims{ExpiresAt: 86400}}
		mockJWT.On("Validate", "valid_token").Return(claims, nil)
		mockUsecase.On("UpdateProfile", mock.Anything, 7, requestBody).Return(nil)

		r, w := createTestRequest(http.MethodPut, "/api/profile", body)
		r.Header.Set("JWT-Token", "Bearer valid_token")

		h.UpdateProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Invalid JWT Token", func(t *testing.T) {
		mockUsecase := new(mocks.MockProfileUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewProfileHandler(mockUsecase, mockJWT)

		mockJWT.On("Validate", "invalid_token").Return(nil, errors.New("invalid token"))

		r, w := createTestRequest(http.MethodPut, "/api/profile", nil)
		r.Header.Set("JWT-Token", "Bearer invalid_token")

		h.UpdateProfile(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
