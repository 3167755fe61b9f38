package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockBalanceRepository is a mock implementation of the persistence.BalanceRepository port
type MockBalanceRepository struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockBalanceRepository) Get(ctx context.Context, userID uint64) (*entity.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Balance), args.Error(1)
}

// GetForUpdate mocks the GetForUpdate method
func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Balance), args.Error(1)
}

// GetOrCreateForUpdate mocks the GetOrCreateForUpdate method
func (m *MockBalanceRepository) GetOrCreateForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Balance), args.Error(1)
}

// Save mocks the Save method
func (m *MockBalanceRepository) Save(ctx context.Context, balance *entity.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}
