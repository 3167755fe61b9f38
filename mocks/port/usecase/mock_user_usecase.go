package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of the usecase.UserUseCase port
type MockUserUseCase struct {
	mock.Mock
}

// CreateUser mocks the CreateUser method
func (m *MockUserUseCase) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// UserExists mocks the UserExists method
func (m *MockUserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// GetUser mocks the GetUser method
func (m *MockUserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// SeedDefaultUsers mocks the SeedDefaultUsers method
func (m *MockUserUseCase) SeedDefaultUsers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
