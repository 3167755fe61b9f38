package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// TransactionType represents the kind of balance mutation a transaction records
type TransactionType string

// Transaction types
const (
	TypeDeposit     TransactionType = "deposit"
	TypeWithdraw    TransactionType = "withdraw"
	TypeTransferOut TransactionType = "transfer_out"
	TypeTransferIn  TransactionType = "transfer_in"
)

// MaxCommentLength is the maximum length of the optional free-text comment
const MaxCommentLength = 255

// Transaction is an immutable, append-only audit record describing one signed
// change to a user's balance. BalanceBefore/BalanceAfter are exact snapshots
// surrounding that single mutation.
type Transaction struct {
	ID                 uint64          // Database identifier, assigned on insert
	UserID             uint64          // User whose balance this record describes
	Type               TransactionType // deposit, withdraw, transfer_out or transfer_in
	AmountInCents      int64           // Always positive; the sign comes from the type
	BalanceBeforeCents int64           // Balance snapshot immediately before the mutation
	BalanceAfterCents  int64           // Balance snapshot immediately after the mutation
	RelatedUserID      *uint64         // Counterparty for transfer_out/transfer_in
	Comment            string          // Optional free text, at most MaxCommentLength chars
	CreatedAt          time.Time       // When the record was created
}

// NewTransaction creates a new audit record with basic validation
func NewTransaction(
	userID uint64,
	txType TransactionType,
	amountInCents int64,
	balanceBefore int64,
	balanceAfter int64,
	relatedUserID *uint64,
	comment string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !isValidType(txType) {
		return nil, errs.ErrInvalidRequest
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if len(comment) > MaxCommentLength {
		return nil, errs.ErrInvalidComment
	}
	if isTransferType(txType) && relatedUserID == nil {
		return nil, errs.ErrInvalidRequest
	}

	return &Transaction{
		UserID:             userID,
		Type:               txType,
		AmountInCents:      amountInCents,
		BalanceBeforeCents: balanceBefore,
		BalanceAfterCents:  balanceAfter,
		RelatedUserID:      relatedUserID,
		Comment:            comment,
		CreatedAt:          timeProvider.Now(),
	}, nil
}

// Amount returns the amount as a string with two decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// SignedDelta returns the signed effect of this record on the user's balance:
// positive for deposit/transfer_in, negative for withdraw/transfer_out
func (t *Transaction) SignedDelta() int64 {
	if t.IsCredit() {
		return t.AmountInCents
	}
	return -t.AmountInCents
}

// IsCredit returns true if this transaction increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeDeposit || t.Type == TypeTransferIn
}

// IsDebit returns true if this transaction decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeWithdraw || t.Type == TypeTransferOut
}

// isValidType validates if the transaction type is allowed
func isValidType(txType TransactionType) bool {
	switch txType {
	case TypeDeposit, TypeWithdraw, TypeTransferOut, TypeTransferIn:
		return true
	}
	return false
}

// isTransferType reports whether the type requires a counterparty
func isTransferType(txType TransactionType) bool {
	return txType == TypeTransferOut || txType == TypeTransferIn
}
