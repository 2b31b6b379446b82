package router

import (
	auth "aptitude_quiz/internal/auth/controller"
	profile "aptitude_quiz/internal/profile/controller"
	quiz "aptitude_quiz/internal/quiz/controller"
	series "aptitude_quiz/internal/series/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(
	authHandler *auth.AuthHandler,
	quizHandler *quiz.QuizHandler,
	seriesHandler *series.SeriesHandler,
	profileHandler *profile.ProfileHandler,
) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/auth/register", authHandler.RegisterUser).Methods("POST")
	router.HandleFunc(api+"/auth/login", authHandler.LoginUser).Methods("POST")

	router.HandleFunc(api+"/categories", quizHandler.GetCategories).Methods("GET")
	router.HandleFunc(api+"/topics/{topicId}/questions", quizHandler.GetTopicQuestions).Methods("GET")
	router.HandleFunc(api+"/questions/answer", quizHandler.SubmitAnswer).Methods("POST")

	router.HandleFunc(api+"/test-series", seriesHandler.GetTestSeries).Methods("GET")
	router.HandleFunc(api+"/test-series/purchase", seriesHandler.PurchaseTestSeries).Methods("POST")

	router.HandleFunc(api+"/leaderboard", profileHandler.GetLeaderboard).Methods("GET")
	router.HandleFunc(api+"/profile", profileHandler.GetProfile).Methods("GET")
	router.HandleFunc(api+"/profile", profileHandler.UpdateProfile).Methods("PUT")
	router.HandleFunc(api+"/users/{userId}", profileHandler.GetUserProfile).Methods("GET")

	return router
}
