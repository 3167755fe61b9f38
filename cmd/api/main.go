package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	balanceUseCase "github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/balance"
	userUseCase "github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/user"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logLevelFromString(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		ConnectRetries:  cfg.Database.ConnectRetries,
		ConnectDelay:    cfg.Database.ConnectDelay,
	}

	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	if err := migration.NewManager(conn.DB, appLogger).MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	userService := userUseCase.NewService(userRepo, tp, appLogger)
	balanceService := balanceUseCase.NewService(uow, userRepo, tp, appLogger, cfg.Database.QueryTimeout)

	if cfg.Seed.DefaultUsers {
		if err := userService.SeedDefaultUsers(context.Background()); err != nil {
			appLogger.Error("Failed to seed default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	balanceHandler := handler.NewBalanceHandler(balanceService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, balanceHandler, userHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// logLevelFromString maps a config level string to the logger port level
func logLevelFromString(level string) coreport.LogLevel {
	switch level {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or WL_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or WL_DB_USERNAME)")
	}
	if cfg.Database.Password == "" {
		missing = append(missing, "database.password (or WL_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or WL_DB_NAME)")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
