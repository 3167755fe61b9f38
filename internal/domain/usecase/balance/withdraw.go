package balance

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Withdraw debits the amount from the user's balance. Unlike Deposit it never
// creates a balance row: withdrawing from a user who has no row fails with
// ErrNoBalance, and an amount above the current balance fails with
// ErrInsufficientFunds. Both abort the unit of work before any write.
func (s *Service) Withdraw(ctx context.Context, userID uint64, amount, comment string) (*usecase.OperationResult, error) {
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

		balance, err := balances.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		before, after, err := balance.Debit(amountInCents, s.timeProvider)
		if err != nil {
			if errors.Is(err, errs.ErrInsufficientFunds) {
				return errs.NewInsufficientFundsError(
					userID, entity.AmountInCentsToString(amountInCents), balance.Formatted())
			}
			return err
		}

		if err := balances.Save(txCtx, balance); err != nil {
			return err
		}

		txn, err := entity.NewTransaction(
			userID, entity.TypeWithdraw, amountInCents, before, after, nil, comment, s.timeProvider)
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
		return nil, s.failOperation("withdraw", userID, amount, err)
	}

	s.logger.Info("Withdrawal completed", map[string]any{
		"user_id":     userID,
		"amount":      result.Amount,
		"new_balance": result.Balance,
	})
	return result, nil
}
