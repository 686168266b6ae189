package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowgate/internal/api/handler"
	"flowgate/internal/auth"
	"flowgate/internal/config"
	"flowgate/internal/core/postgres"
	"flowgate/internal/core/postgres/repository"
	"flowgate/internal/domain"
	"flowgate/internal/gateway"
	"flowgate/internal/infrastructure/redis"
	"flowgate/internal/logging"
	"flowgate/internal/recorder"
	"flowgate/internal/service"
	"flowgate/internal/upstream"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	db, err := postgres.Open(cfg.DSN(), cfg.DB.MaxConns)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.AccessToken{},
		&domain.Workflow{},
		&domain.WorkflowLog{},
	); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.NewClient(cfg.Redis.Addr)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	bus := redis.NewEventBus(redisClient)

	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)
	workflows := repository.NewWorkflowRepository(db)
	logs := repository.NewLogRepository(db)

	rec := recorder.New(logs, bus, recorder.Config{
		QueueSize: cfg.Recorder.QueueSize,
		Workers:   cfg.Recorder.Workers,
		Policy:    postgres.RetryPolicy{MaxAttempts: cfg.Recorder.MaxAttempts, Backoff: time.Second},
	}, logger)
	rec.Start()

	invoker := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	pipeline := gateway.NewPipeline(workflows, invoker, rec, logger)

	sessions := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	server := handler.NewServer(
		sessions,
		service.NewAuthService(users, sessions),
		service.NewTokenService(tokens),
		service.NewWorkflowService(workflows, tokens),
		service.NewLogService(logs, workflows),
		pipeline,
	)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.SetupRoutes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	// flush queued audit records before letting go of the database
	if err := rec.Drain(shutdownCtx); err != nil {
		logger.Error("recorder drain incomplete", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("redis close failed", "error", err)
	}

	logger.Info("shutdown complete")
}
