package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements the persistence.BalanceRepository port using
// GORM. The *ForUpdate methods issue SELECT ... FOR UPDATE, so they must run
// on a *gorm.DB that is inside a transaction for the lock to outlive the
// statement.
type BalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func balanceModelToEntity(balanceModel *model.Balance) *entity.Balance {
	return entity.RestoreBalance(
		balanceModel.UserID,
		balanceModel.Amount,
		balanceModel.CreatedAt,
		balanceModel.UpdatedAt,
	)
}

// handleDatabaseError standardizes database error handling. Lock contention
// and transient connection failures are logged as warnings since they resolve
// on retry by the caller; everything else is an error.
func (r *BalanceRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNoBalance
	}

	fields := map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn(fmt.Sprintf("Lock contention when %s", operation), fields)
		return fmt.Errorf("%w: lock contention: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if r.errorClassifier.IsTransientError(err) {
		r.logger.Warn(fmt.Sprintf("Transient database failure when %s", operation), fields)
		return fmt.Errorf("%w: transient failure: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Get retrieves a user's balance row without locking it
func (r *BalanceRepository) Get(ctx context.Context, userID uint64) (*entity.Balance, error) {
	var balanceModel model.Balance
	result := r.db.WithContext(ctx).First(&balanceModel, "user_id = ?", userID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting balance", result.Error, userID)
	}
	return balanceModelToEntity(&balanceModel), nil
}

// GetForUpdate retrieves a user's balance row under an exclusive row lock.
// Blocks until a conflicting transaction releases the row.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	var balanceModel model.Balance
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balanceModel, "user_id = ?", userID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking balance", result.Error, userID)
	}
	return balanceModelToEntity(&balanceModel), nil
}

// GetOrCreateForUpdate retrieves a user's balance row under an exclusive row
// lock, inserting a zero row first if none exists. A concurrent insert of the
// same row loses on the primary key; the loser falls through to locking the
// winner's row.
func (r *BalanceRepository) GetOrCreateForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	now := r.timeProvider.Now()
	insert := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Balance{
			UserID:    userID,
			Amount:    0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	if insert.Error != nil && !r.errorClassifier.IsDuplicateKeyError(insert.Error) {
		return nil, r.handleDatabaseError("creating balance row", insert.Error, userID)
	}

	return r.GetForUpdate(ctx, userID)
}

// Save persists the amount of a previously locked balance row
func (r *BalanceRepository) Save(ctx context.Context, balance *entity.Balance) error {
	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ?", balance.UserID).
		Updates(map[string]interface{}{
			"amount":     balance.AmountInCents(),
			"updated_at": balance.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("saving balance", result.Error, balance.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNoBalance
	}
	return nil
}
