package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// defaultUsers are the accounts seeded into local environments so the ledger
// endpoints can be exercised immediately
var defaultUsers = []struct {
	name  string
	email string
}{
	{name: "Ivan Ivanov", email: "ivan@example.com"},
	{name: "Petr Petrov", email: "petr@example.com"},
	{name: "Maria Sidorova", email: "maria@example.com"},
}

// SeedDefaultUsers creates the predefined users, skipping ones that already
// exist. Balances are not seeded: every balance row starts from a deposit.
func (s *Service) SeedDefaultUsers(ctx context.Context) error {
	for _, seed := range defaultUsers {
		user, err := entity.NewUser(seed.name, seed.email, s.timeProvider)
		if err != nil {
			return err
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				s.logger.Debug("Seed user already exists", map[string]any{
					"email": seed.email,
				})
				continue
			}
			return err
		}

		s.logger.Info("Seed user created", map[string]any{
			"user_id": user.ID,
			"email":   user.Email,
		})
	}
	return nil
}
