package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("debits balance and appends withdraw record", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)
		mustDeposit(t, engine, 1, "500.00")

		result, err := engine.Withdraw(ctx, 1, "200.00", "subscription")

		require.NoError(t, err)
		assert.Equal(t, "200.00", result.Amount)
		assert.Equal(t, "300.00", result.Balance)

		assert.Equal(t, int64(30000), store.balances[1])
		require.Len(t, store.txns, 2)
		txn := store.txns[1]
		assert.Equal(t, entity.TypeWithdraw, txn.Type)
		assert.Equal(t, int64(50000), txn.BalanceBeforeCents)
		assert.Equal(t, int64(30000), txn.BalanceAfterCents)
	})

	t.Run("insufficient funds leaves state untouched", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)
		mustDeposit(t, engine, 1, "100.00")

		_, err := engine.Withdraw(ctx, 1, "200.00", "")

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "200.00", detailed.Amount)
		assert.Equal(t, "100.00", detailed.CurrBalance)

		assert.Equal(t, int64(10000), store.balances[1])
		assert.Len(t, store.txns, 1, "only the funding deposit remains")
	})

	t.Run("withdraw without balance row reports NoBalance and creates nothing", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		_, err := engine.Withdraw(ctx, 1, "50.00", "")

		assert.ErrorIs(t, err, errs.ErrNoBalance)
		_, exists := store.balances[1]
		assert.False(t, exists, "no balance row may be created on withdraw")
		assert.Empty(t, store.txns)
	})

	t.Run("can drain balance to exactly zero", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)
		mustDeposit(t, engine, 1, "75.00")

		result, err := engine.Withdraw(ctx, 1, "75.00", "")

		require.NoError(t, err)
		assert.Equal(t, "0.00", result.Balance)
		assert.Equal(t, int64(0), store.balances[1])
	})

	t.Run("rejects invalid amount before store access", func(t *testing.T) {
		engine, store := newTestEngine(t, 1)

		_, err := engine.Withdraw(ctx, 1, "-5.00", "")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)

		_, err = engine.Withdraw(ctx, 1, "0", "")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		assert.Empty(t, store.txns)
	})

	t.Run("fails for unknown user", func(t *testing.T) {
		engine, _ := newTestEngine(t, 1)

		_, err := engine.Withdraw(ctx, 42, "10.00", "")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestWithdrawDepositSequence(t *testing.T) {
	// 1000.00 -> withdraw 100 -> withdraw 200 -> deposit 50 => 750.00
	ctx := context.Background()
	engine, store := newTestEngine(t, 1)
	mustDeposit(t, engine, 1, "1000.00")

	_, err := engine.Withdraw(ctx, 1, "100", "")
	require.NoError(t, err)
	_, err = engine.Withdraw(ctx, 1, "200", "")
	require.NoError(t, err)
	result, err := engine.Deposit(ctx, 1, "50", "")
	require.NoError(t, err)

	assert.Equal(t, "750.00", result.Balance)
	require.Len(t, store.txns, 4, "funding deposit plus three operations")

	// Balance equals the running sum of signed deltas, in creation order
	var running int64
	for _, txn := range store.txns {
		assert.Equal(t, running, txn.BalanceBeforeCents)
		running += txn.SignedDelta()
		assert.Equal(t, running, txn.BalanceAfterCents)
	}
	assert.Equal(t, store.balances[1], running)
}
