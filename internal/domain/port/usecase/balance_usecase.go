package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// OperationResult is the standardized result body for deposit and withdraw
type OperationResult struct {
	UserID  uint64 `json:"user_id"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"` // Formatted with 2 decimal places
	Comment string `json:"comment,omitempty"`
}

// TransferResult is the standardized result body for a transfer
type TransferResult struct {
	FromUserID  uint64 `json:"from_user_id"`
	ToUserID    uint64 `json:"to_user_id"`
	Amount      string `json:"amount"`
	FromBalance string `json:"from_balance"`
	ToBalance   string `json:"to_balance"`
	Comment     string `json:"comment,omitempty"`
}

// BalanceResult is the standardized balance lookup response. A user with no
// balance row reads as "0.00".
type BalanceResult struct {
	UserID  uint64 `json:"user_id"`
	Balance string `json:"balance"`
}

// TransactionRecord is the audit history entry exposed to the API
type TransactionRecord struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	BalanceBefore string    `json:"balance_before"`
	BalanceAfter  string    `json:"balance_after"`
	RelatedUserID *uint64   `json:"related_user_id,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewTransactionRecord converts an audit entity to its API representation
func NewTransactionRecord(txn *entity.Transaction) *TransactionRecord {
	return &TransactionRecord{
		ID:            txn.ID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount(),
		BalanceBefore: entity.AmountInCentsToString(txn.BalanceBeforeCents),
		BalanceAfter:  entity.AmountInCentsToString(txn.BalanceAfterCents),
		RelatedUserID: txn.RelatedUserID,
		Comment:       txn.Comment,
		CreatedAt:     txn.CreatedAt,
	}
}

// BalanceUseCase defines the four operations of the balance engine. Each
// mutating operation runs as a single atomic unit of work: it either fully
// succeeds or leaves no externally visible effect.
type BalanceUseCase interface {
	// Deposit credits the amount to the user's balance, creating the balance
	// row if it doesn't exist yet
	Deposit(ctx context.Context, userID uint64, amount, comment string) (*OperationResult, error)

	// Withdraw debits the amount from the user's balance. The balance row
	// must already exist and cover the amount
	Withdraw(ctx context.Context, userID uint64, amount, comment string) (*OperationResult, error)

	// Transfer moves the amount between two distinct users, writing one
	// transfer_out and one transfer_in audit record
	Transfer(ctx context.Context, fromUserID, toUserID uint64, amount, comment string) (*TransferResult, error)

	// GetBalance reads the user's current balance without locking
	GetBalance(ctx context.Context, userID uint64) (*BalanceResult, error)

	// ListTransactions returns a user's audit history in creation order
	ListTransactions(ctx context.Context, userID uint64) ([]*TransactionRecord, error)
}
