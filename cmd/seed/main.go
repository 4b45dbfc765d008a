package main

import (
	"context"
	"log"

	"familyboard/internal/config"
	"familyboard/internal/db"
	"familyboard/internal/model"
	"familyboard/internal/repository"
	"familyboard/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Question{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	// Nil cache is inert, the seed binary has nothing to invalidate.
	questions := service.NewQuestionService(questionRepo, userRepo, nil, cfg.AtomicLikes)

	created, err := questions.SeedDemo(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Records created: %d", created)
}
