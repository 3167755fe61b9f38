package balance

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// memStore is an in-memory ledger store used by the engine tests. A single
// mutex held for the whole unit of work makes every unit of work serializable,
// which is the isolation the real store provides through row locks. Rollback
// restores a snapshot taken at Begin, so failed units of work leave no trace.
type memStore struct {
	mu       sync.Mutex
	balances map[uint64]int64
	rowTimes map[uint64]time.Time
	txns     []*entity.Transaction
	snapshot func()
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		balances: make(map[uint64]int64),
		rowTimes: make(map[uint64]time.Time),
	}
}

func (s *memStore) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()

	balancesCopy := make(map[uint64]int64, len(s.balances))
	for k, v := range s.balances {
		balancesCopy[k] = v
	}
	txnLen := len(s.txns)
	s.snapshot = func() {
		s.balances = balancesCopy
		s.txns = s.txns[:txnLen]
	}

	return context.WithValue(ctx, memTxKey{}, true), nil
}

func (s *memStore) Commit(ctx context.Context) error {
	s.snapshot = nil
	s.mu.Unlock()
	return nil
}

func (s *memStore) Rollback(ctx context.Context) error {
	if s.snapshot != nil {
		s.snapshot()
		s.snapshot = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *memStore) UserRepository(ctx context.Context) persistence.UserRepository {
	panic("memStore does not serve users")
}

func (s *memStore) BalanceRepository(ctx context.Context) persistence.BalanceRepository {
	return &memBalanceRepo{store: s}
}

func (s *memStore) TransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &memTransactionRepo{store: s}
}

// lockUnlessInTx guards single reads issued outside any unit of work
func (s *memStore) lockUnlessInTx(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memBalanceRepo struct {
	store *memStore
}

func (r *memBalanceRepo) Get(ctx context.Context, userID uint64) (*entity.Balance, error) {
	defer r.store.lockUnlessInTx(ctx)()

	cents, ok := r.store.balances[userID]
	if !ok {
		return nil, errs.ErrNoBalance
	}
	created := r.store.rowTimes[userID]
	return entity.RestoreBalance(userID, cents, created, created), nil
}

func (r *memBalanceRepo) GetForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	return r.Get(ctx, userID)
}

func (r *memBalanceRepo) GetOrCreateForUpdate(ctx context.Context, userID uint64) (*entity.Balance, error) {
	defer r.store.lockUnlessInTx(ctx)()

	if _, ok := r.store.balances[userID]; !ok {
		r.store.balances[userID] = 0
		r.store.rowTimes[userID] = time.Now()
	}
	created := r.store.rowTimes[userID]
	return entity.RestoreBalance(userID, r.store.balances[userID], created, created), nil
}

func (r *memBalanceRepo) Save(ctx context.Context, balance *entity.Balance) error {
	defer r.store.lockUnlessInTx(ctx)()

	if _, ok := r.store.balances[balance.UserID]; !ok {
		return errs.ErrNoBalance
	}
	r.store.balances[balance.UserID] = balance.AmountInCents()
	return nil
}

type memTransactionRepo struct {
	store *memStore
}

func (r *memTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	defer r.store.lockUnlessInTx(ctx)()

	transaction.ID = uint64(len(r.store.txns) + 1)
	r.store.txns = append(r.store.txns, transaction)
	return nil
}

func (r *memTransactionRepo) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	defer r.store.lockUnlessInTx(ctx)()

	var out []*entity.Transaction
	for _, txn := range r.store.txns {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

// userDirectory is a fixed read-only set of known user IDs
type userDirectory struct {
	known map[uint64]bool
}

func newUserDirectory(ids ...uint64) *userDirectory {
	known := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &userDirectory{known: known}
}

func (d *userDirectory) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	if !d.known[id] {
		return nil, errs.ErrUserNotFound
	}
	return &entity.User{ID: id}, nil
}

func (d *userDirectory) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.known[id], nil
}

func (d *userDirectory) Create(ctx context.Context, user *entity.User) error {
	user.ID = uint64(len(d.known) + 1)
	d.known[user.ID] = true
	return nil
}
