package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	authController "aptitude_quiz/internal/auth/controller"
	authRepository "aptitude_quiz/internal/auth/repository"
	authUsecase "aptitude_quiz/internal/auth/usecase"

	quizController "aptitude_quiz/internal/quiz/controller"
	quizRepository "aptitude_quiz/internal/quiz/repository"
	quizUsecase "aptitude_quiz/internal/quiz/usecase"

	seriesController "aptitude_quiz/internal/series/controller"
	seriesRepository "aptitude_quiz/internal/series/repository"
	seriesUsecase "aptitude_quiz/internal/series/usecase"

	profileController "aptitude_quiz/internal/profile/controller"
	profileRepository "aptitude_quiz/internal/profile/repository"
	profileUsecase "aptitude_quiz/internal/profile/usecase"

	"aptitude_quiz/internal/service/logger"
	"aptitude_quiz/internal/service/middleware"
	"aptitude_quiz/internal/service/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db := middleware.DbConnect()
	middleware.InitRedis()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	jwtToken, err := middleware.NewJwtToken(secret)
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC, jwtToken)

	quizRepo := quizRepository.NewQuizRepository(db)
	quizUC := quizUsecase.NewQuizUsecase(quizRepo)
	quizHandler := quizController.NewQuizHandler(quizUC, jwtToken)

	seriesRepo := seriesRepository.NewSeriesRepository(db)
	seriesUC := seriesUsecase.NewSeriesUsecase(seriesRepo)
	seriesHandler := seriesController.NewSeriesHandler(seriesUC, jwtToken)

	profileRepo := profileRepository.NewProfileRepository(db, middleware.RedisClient)
	profileUC := profileUsecase.NewProfileUsecase(profileRepo)
	profileHandler := profileController.NewProfileHandler(profileUC, jwtToken)

	mainRouter := router.SetUpRoutes(authHandler, quizHandler, seriesHandler, profileHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))

	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
