package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pasindulk/expense_chat_app/internal/adapters/messaging"
	"github.com/pasindulk/expense_chat_app/internal/adapters/sheets"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/core/services"
	"github.com/pasindulk/expense_chat_app/internal/handlers"
	"github.com/pasindulk/expense_chat_app/internal/middleware"
	"github.com/pasindulk/expense_chat_app/internal/platform/config"
	"github.com/pasindulk/expense_chat_app/internal/repositories/database/pgsql"
	"github.com/pasindulk/expense_chat_app/internal/utils"
	"github.com/pasindulk/expense_chat_app/pkg/database"
)

// @title ECA Backend API
// @version 1.0
// @description Chat-driven expense tracker backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Analytics (no-op when unconfigured)
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	// Outbound providers. Either may be absent; recording still works and the
	// webhook response carries a warning instead.
	var sheetAppender portssvc.SheetAppender
	if cfg.GoogleServiceAccountKey != "" {
		sheetAppender, err = sheets.NewGoogleSheetsAppender(context.Background(), []byte(cfg.GoogleServiceAccountKey))
		if err != nil {
			logger.Error("Failed to initialize sheets client", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var messageSender portssvc.MessageSender
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioWhatsAppNumber != "" {
		from := cfg.TwilioWhatsAppNumber
		if !strings.HasPrefix(from, cfg.ChannelPrefix) {
			from = cfg.ChannelPrefix + from
		}
		messageSender = messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, from)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, sheetAppender, messageSender)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the dashboard)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
