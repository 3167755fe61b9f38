package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// TransactionRepository stores the append-only audit log. Records are never
// updated or deleted after creation.
type TransactionRepository interface {
	// Create appends a new audit record and assigns its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns a user's audit records in creation order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
