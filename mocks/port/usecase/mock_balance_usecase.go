package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockBalanceUseCase is a mock implementation of the usecase.BalanceUseCase port
type MockBalanceUseCase struct {
	mock.Mock
}

// Deposit mocks the Deposit method
func (m *MockBalanceUseCase) Deposit(ctx context.Context, userID uint64, amount, comment string) (*usecase.OperationResult, error) {
	args := m.Called(ctx, userID, amount, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.OperationResult), args.Error(1)
}

// Withdraw mocks the Withdraw method
func (m *MockBalanceUseCase) Withdraw(ctx context.Context, userID uint64, amount, comment string) (*usecase.OperationResult, error) {
	args := m.Called(ctx, userID, amount, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.OperationResult), args.Error(1)
}

// Transfer mocks the Transfer method
func (m *MockBalanceUseCase) Transfer(ctx context.Context, fromUserID, toUserID uint64, amount, comment string) (*usecase.TransferResult, error) {
	args := m.Called(ctx, fromUserID, toUserID, amount, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TransferResult), args.Error(1)
}

// GetBalance mocks the GetBalance method
func (m *MockBalanceUseCase) GetBalance(ctx context.Context, userID uint64) (*usecase.BalanceResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BalanceResult), args.Error(1)
}

// ListTransactions mocks the ListTransactions method
func (m *MockBalanceUseCase) ListTransactions(ctx context.Context, userID uint64) ([]*usecase.TransactionRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.TransactionRecord), args.Error(1)
}
