package balance

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("first deposit creates balance row with zero before snapshot", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		result, err := engine.Deposit(ctx, 1, "500.00", "top up via card")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), result.UserID)
		assert.Equal(t, "500.00", result.Amount)
		assert.Equal(t, "500.00", result.Balance)
		assert.Equal(t, "top up via card", result.Comment)

		assert.Equal(t, int64(50000), store.balances[1])
		require.Len(t, store.txns, 1)
		txn := store.txns[0]
		assert.Equal(t, entity.TypeDeposit, txn.Type)
		assert.Equal(t, int64(0), txn.BalanceBeforeCents)
		assert.Equal(t, int64(50000), txn.BalanceAfterCents)
		assert.Nil(t, txn.RelatedUserID)
	})

	t.Run("sequential deposits accumulate in order", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		mustDeposit(t, engine, 1, "100.00")
		result, err := engine.Deposit(ctx, 1, "200.00", "")

		require.NoError(t, err)
		assert.Equal(t, "300.00", result.Balance)
		require.Len(t, store.txns, 2)
		assert.Equal(t, int64(0), store.txns[0].BalanceBeforeCents)
		assert.Equal(t, int64(10000), store.txns[0].BalanceAfterCents)
		assert.Equal(t, int64(10000), store.txns[1].BalanceBeforeCents)
		assert.Equal(t, int64(30000), store.txns[1].BalanceAfterCents)
	})

	t.Run("rejects non-positive and malformed amounts", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		for _, amount := range []string{"0", "0.00", "-10.00", "abc", "1.234"} {
			_, err := engine.Deposit(ctx, 1, amount, "")
			assert.Error(t, err, amount)
		}
		assert.Empty(t, store.balances)
		assert.Empty(t, store.txns)
	})

	t.Run("rejects oversized comment", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		_, err := engine.Deposit(ctx, 1, "10.00", strings.Repeat("a", entity.MaxCommentLength+1))

		assert.ErrorIs(t, err, errs.ErrInvalidComment)
		assert.Empty(t, store.txns)
	})

	t.Run("fails for unknown user without touching the store", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		_, err := engine.Deposit(ctx, 999, "10.00", "")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Empty(t, store.balances)
	})

	t.Run("rolls back balance write when audit append fails", func(t *testing.T) {
		uow := new(mockpersistence.MockUnitOfWork)
		balanceRepo := new(mockpersistence.MockBalanceRepository)
		txnRepo := new(mockpersistence.MockTransactionRepository)
		userRepo := new(mockpersistence.MockUserRepository)
		logger := new(mockcore.MockLogger)
		clock := newStubClock()

		userRepo.On("Exists", ctx, uint64(1)).Return(true, nil)
		uow.On("Begin", ctx).Return(ctx, nil)
		uow.On("BalanceRepository", ctx).Return(balanceRepo)
		uow.On("TransactionRepository", ctx).Return(txnRepo)
		uow.On("Rollback", ctx).Return(nil)

		row, _ := entity.NewBalance(1, clock)
		balanceRepo.On("GetOrCreateForUpdate", ctx, uint64(1)).Return(row, nil)
		balanceRepo.On("Save", ctx, row).Return(nil)
		txnRepo.On("Create", ctx, mock.Anything).Return(errs.ErrDatabaseConnection)
		logger.On("Error", mock.Anything, mock.Anything).Return()

		engine := NewService(uow, userRepo, clock, logger, 0)

		_, err := engine.Deposit(ctx, 1, "10.00", "")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		uow.AssertCalled(t, "Rollback", ctx)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
