package main

import (
	"log"
	"net/http"
	"os"

	_ "familyboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"familyboard/internal/auth"
	"familyboard/internal/cache"
	"familyboard/internal/config"
	"familyboard/internal/db"
	"familyboard/internal/handler"
	"familyboard/internal/model"
	"familyboard/internal/repository"
	"familyboard/internal/router"
	"familyboard/internal/service"
	"familyboard/internal/storage"
	"familyboard/internal/tabular"
)

// @title Family Questions API
// @version 1.0
// @description Family Q&A board: questions, likes, profiles and media uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(os.Stderr)

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Question{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Question{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tabularClient := tabular.New(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	if !tabularClient.IsConfigured() {
		zlog.Warn().Msg("tabular backend not configured, listing endpoints will return 503")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	// Initialize services
	questionService := service.NewQuestionService(questionRepo, userRepo, cacheClient, cfg.AtomicLikes)
	recordService := service.NewRecordService(tabularClient, cacheClient, cfg.AirtableTable)
	profileService := service.NewProfileService(userRepo)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	questionHandler := handler.NewQuestionHandler(questionService)
	profileHandler := handler.NewProfileHandler(profileService)
	uploadHandler := handler.NewUploadHandler(storage.NewLocalStore(cfg.UploadRoot))
	envHandler := handler.NewEnvHandler()
	seedHandler := handler.NewSeedHandler(questionService)

	verifier := auth.NewSessionVerifier(cfg.SessionSecret)

	// Register routes
	router.Register(
		e,
		cfg,
		verifier,
		recordHandler,
		questionHandler,
		profileHandler,
		uploadHandler,
		envHandler,
		seedHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
