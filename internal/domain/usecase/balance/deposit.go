package balance

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Deposit credits the amount to the user's balance. The balance row is
// created lazily on a user's first deposit.
func (s *Service) Deposit(ctx context.Context, userID uint64, amount, comment string) (*usecase.OperationResult, error) {
	amountInCents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}
	if len(comment) > entity.MaxCommentLength {
		return nil, errs.ErrInvalidComment
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var result *usecase.OperationResult

	err = s.runAtomic(ctx, func(txCtx context.Context) error {
		balances := s.uow.BalanceRepository(txCtx)
		transactions := s.uow.TransactionRepository(txCtx)

		balance, err := balances.GetOrCreateForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		before, after, err := balance.Credit(amountInCents, s.timeProvider)
		if err != nil {
			return err
		}

		if err := balances.Save(txCtx, balance); err != nil {
			return err
		}

		txn, err := entity.NewTransaction(
			userID, entity.TypeDeposit, amountInCents, before, after, nil, comment, s.timeProvider)
		if err != nil {
			return err
		}
		if err := transactions.Create(txCtx, txn); err != nil {
			return err
		}

		result = &usecase.OperationResult{
			UserID:  userID,
			Amount:  entity.AmountInCentsToString(amountInCents),
			Balance: balance.Formatted(),
			Comment: comment,
		}
		return nil
	})
	if err != nil {
		return nil, s.failOperation("deposit", userID, amount, err)
	}

	s.logger.Info("Deposit completed", map[string]any{
		"user_id":     userID,
		"amount":      result.Amount,
		"new_balance": result.Balance,
	})
	return result, nil
}
