package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of the persistence.TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// ListByUser mocks the ListByUser method
func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}
