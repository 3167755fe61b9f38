package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// UserUseCase defines methods for the user directory
type UserUseCase interface {
	// CreateUser creates a new user with the given name and email
	CreateUser(ctx context.Context, name, email string) (*entity.User, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// SeedDefaultUsers creates the predefined users used by local
	// environments and the test suite, skipping ones that already exist
	SeedDefaultUsers(ctx context.Context) error
}
