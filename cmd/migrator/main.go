package main

import (
	"fmt"
	"log"

	"aptitude_quiz/domain"
	"aptitude_quiz/internal/service/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate() (err error) {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return err
	}
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Topic{},
		&domain.Question{},
		&domain.UserProgress{},
		&domain.TestSeries{},
		&domain.UserTestSeries{},
	)
	if err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
