// Package main implements the entry point for the JobVerse API server,
// the shared backend of the job-board and diagnostic-test booking clients.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobverse/jobverse-api/internal/api"
	"github.com/jobverse/jobverse-api/internal/api/middleware"
	"github.com/jobverse/jobverse-api/internal/config"
	"github.com/jobverse/jobverse-api/internal/platform/logger"
	"github.com/jobverse/jobverse-api/internal/platform/mongodb"
	"github.com/jobverse/jobverse-api/internal/service/auth"
	"github.com/jobverse/jobverse-api/internal/service/payment"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires configuration, storage, services, and the HTTP server, then
// blocks until shutdown. Split from main so every failure path returns an
// error instead of calling os.Exit mid-initialization.
func run() error {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			slog.Error("failed to disconnect from database", "error", err)
		}
	}()

	userStore := mongodb.NewUserStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure database indexes: %w", err)
	}

	jobStore := mongodb.NewJobStore(db)
	applicationStore := mongodb.NewJobApplicationStore(db)
	testStore := mongodb.NewDiagnosticTestStore(db)
	reservationStore := mongodb.NewReservationStore(db)
	bannerStore := mongodb.NewBannerStore(db)
	healthTipStore := mongodb.NewHealthTipStore(db)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	paymentService := payment.NewStripeService(cfg.Payment)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userStore, jobStore)

	deps := handlerDeps{
		authHandler:        api.NewAuthHandler(jwtService),
		userHandler:        api.NewUserHandler(userStore),
		jobHandler:         api.NewJobHandler(jobStore),
		applicationHandler: api.NewJobApplicationHandler(applicationStore, jobStore),
		diagnosticHandler:  api.NewDiagnosticTestHandler(testStore),
		reservationHandler: api.NewReservationHandler(reservationStore, testStore),
		bannerHandler:      api.NewBannerHandler(bannerStore),
		healthTipHandler:   api.NewHealthTipHandler(healthTipStore),
		paymentHandler:     api.NewPaymentHandler(paymentService),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      newRouter(deps, authMiddleware),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
