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

	"github.com/SscSPs/loan_service/internal/adapters/database/mongodb"
	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/SscSPs/loan_service/internal/core/services"
	"github.com/SscSPs/loan_service/internal/handlers"
	"github.com/SscSPs/loan_service/internal/middleware"
	"github.com/SscSPs/loan_service/internal/platform/config"
	"github.com/SscSPs/loan_service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Loan Service API
// @version 1.0
// @description Create and list loans.

// @BasePath /v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connector, err := database.NewMongoConnector(database.MongoConfig{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		ConnectTimeout: cfg.MongoConnectTimeout,
		RetryInterval:  cfg.MongoRetryInterval,
		MaxAttempts:    cfg.MongoMaxConnectAttempts,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize database connector", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The listener does not wait for the database; requests fail with 500 until it is reachable.
	dbErr := make(chan error, 1)
	go func() {
		dbErr <- connectDatabase(ctx, connector, cfg.MongoCollection, logger)
	}()

	repos := mongodb.NewRepositoryProvider(connector, cfg.MongoCollection)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serverErr <- srv.ListenAndServe()
	}()

	exitCode := 0
	for running := true; running; {
		select {
		case err := <-serverErr:
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server failed to run", slog.String("error", err.Error()))
				exitCode = 1
			}
			running = false
		case err := <-dbErr:
			dbErr = nil
			if err != nil {
				logger.Error("Database unavailable, shutting down", slog.String("error", err.Error()))
				exitCode = 1
				running = false
			}
		case <-ctx.Done():
			logger.Info("Shutting down server...")
			running = false
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		exitCode = 1
	}
	if err := connector.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close database connection", slog.String("error", err.Error()))
		exitCode = 1
	}

	os.Exit(exitCode)
}

// connectDatabase runs the connection loop and prepares the loan collection once
// connected. It returns an error only when the connector gave up; cancellation
// is not an error.
func connectDatabase(ctx context.Context, connector *database.MongoConnector, collection string, logger *slog.Logger) error {
	err := connector.Run(ctx)
	logger.Info("Database connection loop finished",
		slog.String("state", connector.State().String()),
		slog.Int("attempts", connector.Attempts()),
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrConnectionAttemptsExhausted) {
			return err
		}
		return nil
	}

	db, err := connector.Database()
	if err != nil {
		return nil
	}

	schemaCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := mongodb.EnsureLoanSchema(schemaCtx, db, collection); err != nil {
		// The service still works without the server-side validator.
		logger.Warn("Failed to apply loan collection validator", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("Loan collection validator applied", slog.String("collection", collection))
	return nil
}
