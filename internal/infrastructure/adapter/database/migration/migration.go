package migration

import (
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager runs the database schema migrations
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Balance{},
		&model.Transaction{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// createIndexes creates indexes AutoMigrate does not cover
func (m *Manager) createIndexes() error {
	// Serves the per-user audit history in creation order
	return m.db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id_id ON transactions (user_id, id)",
	).Error
}
