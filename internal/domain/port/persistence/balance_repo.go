package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// BalanceRepository provides access to per-user balance rows. The *ForUpdate
// methods take an exclusive row lock that is held until the surrounding unit
// of work commits or rolls back, so they are only meaningful on a repository
// obtained from a UnitOfWork.
//
// Lock ordering discipline: any operation that locks more than one balance
// row must acquire the locks in ascending user ID order. This is what keeps
// concurrent transfers free of lock-order-inversion deadlocks.
type BalanceRepository interface {
	// Get retrieves a user's balance row without locking it
	//
	// Possible errors:
	// - ErrNoBalance: If the user has no balance row yet
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, userID uint64) (*entity.Balance, error)

	// GetForUpdate retrieves a user's balance row under an exclusive lock,
	// blocking until any conflicting unit of work finishes
	//
	// Possible errors:
	// - ErrNoBalance: If the user has no balance row yet (no row is created)
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error)

	// GetOrCreateForUpdate retrieves a user's balance row under an exclusive
	// lock, creating it with a zero amount first if it doesn't exist
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetOrCreateForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error)

	// Save persists the current amount of a previously locked balance row
	//
	// Possible errors:
	// - ErrNoBalance: If the row disappeared (should not happen under lock)
	// - ErrDatabaseConnection: If database connection fails
	Save(ctx context.Context, balance *entity.Balance) error
}
