package balance

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Service implements the balance engine. Every mutating operation runs inside
// a single unit of work: row locks are taken on the balance rows it touches,
// the mutation and its audit records are written together, and any failure
// rolls the whole unit back so no partial effect is ever visible.
//
// Balances are never cached in process memory; every read and write goes
// through the store so the audit invariants hold under concurrency.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opTimeout    time.Duration
}

// NewService creates a new balance engine service. opTimeout bounds how long
// a single unit of work may hold its row locks; zero disables the bound.
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opTimeout time.Duration,
) usecase.BalanceUseCase {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
		opTimeout:    opTimeout,
	}
}

// runAtomic executes fn inside a unit of work. If fn returns an error, all
// writes are discarded and the error propagates unchanged; otherwise the
// writes commit together. When an operation timeout is configured the whole
// unit of work runs under that deadline, so a stuck lock wait cannot pin the
// row locks indefinitely.
func (s *Service) runAtomic(ctx context.Context, fn func(txCtx context.Context) error) error {
	if s.opTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.opTimeout)
		defer cancel()
	}
	startedAt := s.timeProvider.Now()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back unit of work", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Debug("Unit of work committed", map[string]any{
		"duration_ms": s.timeProvider.Since(startedAt).Milliseconds(),
	})
	return nil
}

// failOperation logs a failed operation at the right severity and returns the
// error the caller should surface. Expected business failures are warnings
// and pass through unchanged; everything else is wrapped with the operation
// context so upstream logs can tell which mutation broke.
func (s *Service) failOperation(operation string, userID uint64, amount string, err error) error {
	if errs.IsDomainError(err) || errs.IsNotFoundError(err) {
		s.logger.Warn("Operation rejected", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"amount":    amount,
			"error":     err.Error(),
		})
		return err
	}

	lerr := errs.NewLedgerError(operation, userID, amount, err)
	s.logger.Error("Operation failed", lerr.LogFields())
	return lerr
}

// requireUser checks the user directory for the given ID, mapping absence to
// ErrUserNotFound
func (s *Service) requireUser(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
