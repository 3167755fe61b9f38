package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the persistence.TransactionRepository port
// using GORM. The table is append-only; there is no update or delete path.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionEntityToModel(txn *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:            txn.ID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		AmountInCents: txn.AmountInCents,
		BalanceBefore: txn.BalanceBeforeCents,
		BalanceAfter:  txn.BalanceAfterCents,
		RelatedUserID: txn.RelatedUserID,
		Comment:       txn.Comment,
		CreatedAt:     txn.CreatedAt,
	}
}

func transactionModelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 txnModel.ID,
		UserID:             txnModel.UserID,
		Type:               entity.TransactionType(txnModel.Type),
		AmountInCents:      txnModel.AmountInCents,
		BalanceBeforeCents: txnModel.BalanceBefore,
		BalanceAfterCents:  txnModel.BalanceAfter,
		RelatedUserID:      txnModel.RelatedUserID,
		Comment:            txnModel.Comment,
		CreatedAt:          txnModel.CreatedAt,
	}
}

// Create appends a new audit record and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txnModel := transactionEntityToModel(transaction)

	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Warn("Audit record references unknown user", map[string]any{
				"user_id": transaction.UserID,
			})
			return errs.ErrUserNotFound
		}
		r.logger.Error("Failed to append audit record", map[string]any{
			"user_id": transaction.UserID,
			"type":    string(transaction.Type),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = txnModel.ID
	return nil
}

// ListByUser returns a user's audit records in creation order
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&txnModels)
	if result.Error != nil {
		r.logger.Error("Failed to list audit records", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, transactionModelToEntity(&txnModels[i]))
	}
	return txns, nil
}
