package persistence

import (
	"context"
)

// UnitOfWork groups reads and writes against the store so they commit or
// abort together. Row locks taken inside a unit of work are released when it
// commits or rolls back.
type UnitOfWork interface {
	// Begin starts a new unit of work and returns a context bound to it
	Begin(ctx context.Context) (context.Context, error)

	// Commit makes all writes of the unit of work in the given context
	// visible to subsequent callers atomically
	Commit(ctx context.Context) error

	// Rollback discards all writes of the unit of work in the given context
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the unit of work in
	// the given context, or to the base store if there is none
	UserRepository(ctx context.Context) UserRepository

	// BalanceRepository returns a balance repository bound to the unit of
	// work in the given context, or to the base store if there is none
	BalanceRepository(ctx context.Context) BalanceRepository

	// TransactionRepository returns a transaction repository bound to the
	// unit of work in the given context, or to the base store if there is none
	TransactionRepository(ctx context.Context) TransactionRepository
}
