package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection holds the database handle and its configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection establishes a database connection, retrying on transient
// failures so the service survives the database coming up after it.
func NewConnection(config *Config, coreLogger coreport.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(coreLogger, config.LogLevel),
	}

	var db *gorm.DB
	var err error
	for attempt := 0; ; attempt++ {
		db, err = gorm.Open(postgres.Open(config.DSN()), gormConfig)
		if err == nil {
			break
		}
		if attempt >= config.ConnectRetries {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt+1, err)
		}
		coreLogger.Warn("Database connection failed, retrying", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.ConnectRetries,
			"retry_after": config.ConnectDelay.String(),
			"error":       err.Error(),
		})
		time.Sleep(config.ConnectDelay)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
