package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Balance is the persisted current monetary amount owned by one user. The
// amount is stored in cents to avoid floating point precision issues and is
// never allowed to go negative.
type Balance struct {
	UserID    uint64    // Owner of this balance row, at most one row per user
	amount    int64     // Current amount in cents (private)
	CreatedAt time.Time // When the row was created
	UpdatedAt time.Time // When the row was last mutated
}

// NewBalance creates a zero balance row for the given user. Rows are created
// lazily on first deposit or when a user first receives a transfer.
func NewBalance(userID uint64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Balance{
		UserID:    userID,
		amount:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreBalance rebuilds a balance entity from persisted state
func RestoreBalance(userID uint64, amountInCents int64, createdAt, updatedAt time.Time) *Balance {
	return &Balance{
		UserID:    userID,
		amount:    amountInCents,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// AmountInCents returns the current amount in cents
func (b *Balance) AmountInCents() int64 {
	return b.amount
}

// Formatted returns the amount as a string with two decimal places
func (b *Balance) Formatted() string {
	return AmountInCentsToString(b.amount)
}

// CanDebit reports whether the balance covers the given amount
func (b *Balance) CanDebit(amountInCents int64) bool {
	return b.amount >= amountInCents
}

// Credit adds the amount to the balance and returns the snapshots surrounding
// the mutation
func (b *Balance) Credit(amountInCents int64, timeProvider coreport.TimeProvider) (before, after int64, err error) {
	if amountInCents <= 0 {
		return 0, 0, errs.ErrInvalidAmount
	}
	if b.amount > 0 && amountInCents > 0 && b.amount+amountInCents < 0 {
		return 0, 0, errs.ErrAmountOverflow
	}

	before = b.amount
	b.amount += amountInCents
	b.UpdatedAt = timeProvider.Now()
	return before, b.amount, nil
}

// Debit subtracts the amount from the balance, failing with
// ErrInsufficientFunds when the balance would go negative
func (b *Balance) Debit(amountInCents int64, timeProvider coreport.TimeProvider) (before, after int64, err error) {
	if amountInCents <= 0 {
		return 0, 0, errs.ErrInvalidAmount
	}
	if b.amount < amountInCents {
		return 0, 0, errs.ErrInsufficientFunds
	}

	before = b.amount
	b.amount -= amountInCents
	b.UpdatedAt = timeProvider.Now()
	return before, b.amount, nil
}
