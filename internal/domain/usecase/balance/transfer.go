package balance

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Transfer moves the amount from one user to another inside a single unit of
// work, writing one transfer_out and one transfer_in audit record with
// reciprocal counterparty references.
//
// The two balance rows are always locked in ascending user ID order,
// regardless of transfer direction. Two concurrent transfers that share a
// user therefore request that user's lock in the same relative order as every
// other lock they both need, which rules out circular waits without a global
// lock or retry loop.
func (s *Service) Transfer(ctx context.Context, fromUserID, toUserID uint64, amount, comment string) (*usecase.TransferResult, error) {
	amountInCents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}
	if len(comment) > entity.MaxCommentLength {
		return nil, errs.ErrInvalidComment
	}
	// Rejected before any lock is taken
	if fromUserID == toUserID {
		return nil, errs.ErrSelfTransfer
	}

	if err := s.requireUser(ctx, fromUserID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, toUserID); err != nil {
		return nil, err
	}

	var result *usecase.TransferResult

	err = s.runAtomic(ctx, func(txCtx context.Context) error {
		balances := s.uow.BalanceRepository(txCtx)
		transactions := s.uow.TransactionRepository(txCtx)

		fromBalance, toBalance, err := s.lockBothBalances(txCtx, balances, fromUserID, toUserID)
		if err != nil {
			return err
		}

		if !fromBalance.CanDebit(amountInCents) {
			return errs.NewInsufficientFundsError(
				fromUserID, entity.AmountInCentsToString(amountInCents), fromBalance.Formatted())
		}

		fromBefore, fromAfter, err := fromBalance.Debit(amountInCents, s.timeProvider)
		if err != nil {
			return err
		}
		toBefore, toAfter, err := toBalance.Credit(amountInCents, s.timeProvider)
		if err != nil {
			return err
		}

		if err := balances.Save(txCtx, fromBalance); err != nil {
			return err
		}
		if err := balances.Save(txCtx, toBalance); err != nil {
			return err
		}

		outTxn, err := entity.NewTransaction(
			fromUserID, entity.TypeTransferOut, amountInCents, fromBefore, fromAfter, &toUserID, comment, s.timeProvider)
		if err != nil {
			return err
		}
		inTxn, err := entity.NewTransaction(
			toUserID, entity.TypeTransferIn, amountInCents, toBefore, toAfter, &fromUserID, comment, s.timeProvider)
		if err != nil {
			return err
		}

		if err := transactions.Create(txCtx, outTxn); err != nil {
			return err
		}
		if err := transactions.Create(txCtx, inTxn); err != nil {
			return err
		}

		result = &usecase.TransferResult{
			FromUserID:  fromUserID,
			ToUserID:    toUserID,
			Amount:      entity.AmountInCentsToString(amountInCents),
			FromBalance: fromBalance.Formatted(),
			ToBalance:   toBalance.Formatted(),
			Comment:     comment,
		}
		return nil
	})
	if err != nil {
		return nil, s.failOperation("transfer", fromUserID, amount, err)
	}

	s.logger.Info("Transfer completed", map[string]any{
		"from_user_id": fromUserID,
		"to_user_id":   toUserID,
		"amount":       result.Amount,
		"from_balance": result.FromBalance,
		"to_balance":   result.ToBalance,
	})
	return result, nil
}

// lockBothBalances acquires both balance rows in ascending user ID order.
// The sender's row must already exist; a missing sender row maps to
// ErrNoBalance. The recipient's row is created at zero if absent.
func (s *Service) lockBothBalances(
	txCtx context.Context,
	balances persistence.BalanceRepository,
	fromUserID, toUserID uint64,
) (fromBalance, toBalance *entity.Balance, err error) {
	lockOne := func(userID uint64) (*entity.Balance, error) {
		if userID == fromUserID {
			// Sender must already have a row; nothing is created on its behalf
			return balances.GetForUpdate(txCtx, userID)
		}
		return balances.GetOrCreateForUpdate(txCtx, userID)
	}

	first, second := fromUserID, toUserID
	if second < first {
		first, second = second, first
	}

	firstBalance, err := lockOne(first)
	if err != nil {
		return nil, nil, err
	}
	secondBalance, err := lockOne(second)
	if err != nil {
		return nil, nil, err
	}

	if first == fromUserID {
		return firstBalance, secondBalance, nil
	}
	return secondBalance, firstBalance, nil
}
