package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job board: accounts, postings, companies and applications.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (non-fatal: rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Custom validators for gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup Token Manager & UseCases
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
