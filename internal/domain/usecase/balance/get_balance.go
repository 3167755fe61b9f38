package balance

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// GetBalance reads the user's current balance. It takes no locks and runs
// outside any unit of work: a single row read is already consistent, and a
// user who exists but has no balance row reads as a logical zero without a
// row being created.
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*usecase.BalanceResult, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	balance, err := s.uow.BalanceRepository(ctx).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNoBalance) {
			return &usecase.BalanceResult{UserID: userID, Balance: "0.00"}, nil
		}
		s.logger.Error("Failed to read balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.BalanceResult{
		UserID:  userID,
		Balance: balance.Formatted(),
	}, nil
}

// ListTransactions returns the user's audit history in creation order
func (s *Service) ListTransactions(ctx context.Context, userID uint64) ([]*usecase.TransactionRecord, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	txns, err := s.uow.TransactionRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	records := make([]*usecase.TransactionRecord, 0, len(txns))
	for _, txn := range txns {
		records = append(records, usecase.NewTransactionRecord(txn))
	}
	return records, nil
}
