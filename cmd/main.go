package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/config"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/handler"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/repository"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/observability/logging"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/observability/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	commitmentRepo := repository.NewCommitmentRepository(db)
	planRepo := repository.NewStudyPlanRepository(db)

	publisher, err := initPublisher(cfg.PubSub)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		os.Exit(1)
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Error("failed to close publisher", "error", err)
			}
		}()
	}

	feasibilityUseCase := app.NewFeasibilityUseCase(commitmentRepo, planRepo, publisher)
	commitmentUseCase := app.NewCommitmentUseCase(commitmentRepo)
	planUseCase := app.NewPlanUseCase(planRepo)

	router := setupRouter(
		handler.NewFeasibilityHandler(feasibilityUseCase),
		handler.NewCommitmentHandler(commitmentUseCase, feasibilityUseCase),
		handler.NewPlanHandler(planUseCase),
		handler.NewTaskHandler(feasibilityUseCase),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initPublisher(cfg config.PubSubConfig) (pubsub.Publisher, error) {
	if cfg.NatsURL == "" {
		slog.Info("NATS_URL not set, event publishing disabled")

		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{URL: cfg.NatsURL})
}

func setupRouter(
	feasibilityHandler *handler.FeasibilityHandler,
	commitmentHandler *handler.CommitmentHandler,
	planHandler *handler.PlanHandler,
	taskHandler *handler.TaskHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/ping"},
		TracerName: "plan-feasibility",
		ModuleResolver: func(c *gin.Context) logging.Module {
			switch {
			case strings.HasPrefix(c.Request.URL.Path, "/api/v1/feasibility"):
				return logging.ModuleFeasibility
			case strings.HasPrefix(c.Request.URL.Path, "/api/v1/commitments"):
				return logging.ModuleCommitment
			case strings.HasPrefix(c.Request.URL.Path, "/api/v1/study-plans"):
				return logging.ModulePlan
			case strings.HasPrefix(c.Request.URL.Path, "/api/v1/tasks"):
				return logging.ModuleTask
			default:
				return ""
			}
		},
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	feasibilityHandler.RegisterRoutes(v1)
	commitmentHandler.RegisterRoutes(v1)
	planHandler.RegisterRoutes(v1)
	taskHandler.RegisterRoutes(v1)

	return router
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	inner := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(logging.NewContextHandler(inner)))
}
