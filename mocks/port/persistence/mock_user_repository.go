package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of the persistence.UserRepository port
type MockUserRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockUserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockUserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Create mocks the Create method
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
