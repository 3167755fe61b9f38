package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// UserRepository is the read-mostly user directory the ledger engine checks
// users against. The engine treats it as read-only; Create exists for the
// directory's own endpoints and for seeding.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Exists reports whether a user with the given ID exists
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, id uint64) (bool, error)

	// Create creates a new user, assigning its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
