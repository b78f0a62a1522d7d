/**
 * @description
 * This is the main entry point for the enrollment-service.
 * It initializes and wires together all the components of the application,
 * including configuration, database connection, RabbitMQ producer, the subscription
 * use case, the expiry scheduler and the HTTP router.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5: PostgreSQL connection pool.
 * - github.com/joho/godotenv: For loading .env files during local development.
 * - The service's internal packages for config, API, application logic and storage.
 */
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/transfa/enrollment-service/internal/api"
	"github.com/transfa/enrollment-service/internal/app"
	"github.com/transfa/enrollment-service/internal/config"
	"github.com/transfa/enrollment-service/internal/store"
	"github.com/transfa/enrollment-service/pkg/rabbitmq"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Error("unable to parse database URL", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	// PgBouncer transaction pooling does not support prepared statements.
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	logger.Info("database connection established")

	var emailService app.EmailService
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, cfg.NotificationExchange)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		logger.Info("rabbitmq producer connected", "exchange", cfg.NotificationExchange)
		emailService = app.NewQueuedEmailService(producer, cfg.WelcomeEmailRoutingKey)
	} else {
		logger.Warn("RABBITMQ_URL not set, welcome emails will only be logged")
		emailService = app.NewLogEmailService(logger)
	}

	repository := store.NewRepository(dbpool)
	subscriptions := app.NewSubscriptionHandler(repository, emailService, app.WelcomeMessage{
		Subject: cfg.WelcomeEmailSubject,
		Body:    cfg.WelcomeEmailBody,
	}, logger)
	handler := api.NewHandler(subscriptions)
	router := api.NewRouter(handler, cfg.JWTSigningSecret)

	scheduler := app.NewScheduler(app.NewJobs(repository, logger, cfg.JobTimeout), logger, cfg.SubscriptionExpirySchedule)
	if err := scheduler.Start(); err != nil {
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-sigCh
	logger.Info("shutdown signal received, gracefully shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("scheduled jobs still running at shutdown")
	}

	logger.Info("server stopped")
}
