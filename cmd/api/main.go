package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Job Matching Backend API
// @version         1.0
// @description     Backend for a talent/job matching platform using Clean Architecture.
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
	logger.Log.Info("Starting job matching backend", "port", cfg.Port)

	// 3. Apply schema migrations
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (optional - rate limiter falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// 7. Setup Token Manager
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, matchRepo, jobRepo, userRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo, jobRepo, userRepo)
	userUC := usecase.NewUserUsecase(userRepo)

	// 9. Setup Metrics Registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		MatchUC:       matchUC,
		UserUC:        userUC,
		Tokens:        tokens,
		Registry:      registry,
		Config:        cfg,
	})

	// 11. Start Server
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
