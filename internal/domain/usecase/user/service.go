package user

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Service implements the user directory. The balance engine only consults it
// for existence checks; the directory never touches balances.
type Service struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user directory service
func NewService(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &Service{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUser creates a new user with the given name and email
func (s *Service) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	user, err := entity.NewUser(name, email, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

// UserExists checks if a user exists with the given ID
func (s *Service) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}
	return s.userRepo.Exists(ctx, userID)
}

// GetUser retrieves a user by ID
func (s *Service) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, userID)
}
