package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// User represents an account in the user directory. The ledger engine only
// references users by ID; balances live in their own aggregate.
type User struct {
	ID        uint64    // Unique identifier for the user
	Name      string    // Display name
	Email     string    // Unique email address
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a new user with the given name and email
func NewUser(name, email string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, errs.ErrInvalidUserData
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidUserData
	}

	now := timeProvider.Now()
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
