package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/bleep241/event-booker/config"
	"github.com/bleep241/event-booker/internal/adapters/auth"
	httpdelivery "github.com/bleep241/event-booker/internal/delivery/http"
	"github.com/bleep241/event-booker/internal/delivery/http/middleware"
	"github.com/bleep241/event-booker/internal/graph"
	"github.com/bleep241/event-booker/internal/repository/postgres"
	"github.com/bleep241/event-booker/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}
	cancel()

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	userService := services.NewUserService(userRepo, hasher, serviceTimeout)
	eventService := services.NewEventService(eventRepo, userRepo, serviceTimeout)

	resolver := graph.NewResolver(eventService, userService)
	executor := graph.NewExecutor(resolver, resolver, logger)

	controller := httpdelivery.NewGraphQLController(executor, logger)
	mux := httpdelivery.NewRouter(controller)
	handler := middleware.CallerIdentity(cfg.DefaultOwnerID,
		middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-stopChan
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
