package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of the persistence.UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

// Begin mocks the Begin method
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit mocks the Commit method
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback mocks the Rollback method
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// UserRepository mocks the UserRepository method
func (m *MockUnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

// BalanceRepository mocks the BalanceRepository method
func (m *MockUnitOfWork) BalanceRepository(ctx context.Context) persistence.BalanceRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.BalanceRepository)
}

// TransactionRepository mocks the TransactionRepository method
func (m *MockUnitOfWork) TransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}
