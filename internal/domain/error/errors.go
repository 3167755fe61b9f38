package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeSelfTransfer      = 4004
	CodeNoBalance         = 4005
	CodeAmountOverflow    = 4006
	CodeInvalidComment    = 4007
	CodeUserNotFound      = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a user's balance is below the requested amount
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when the amount is malformed or not strictly positive
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large to represent in cents
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrSelfTransfer is returned when the source and destination of a transfer are the same user
	ErrSelfTransfer = errors.New("cannot transfer funds to the same user")

	// ErrNoBalance is returned when a debit operation targets a user with no balance row
	ErrNoBalance = errors.New("user has no balance")

	// ErrInvalidComment is returned when the comment exceeds the allowed length
	ErrInvalidComment = errors.New("comment exceeds maximum length")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidUserData is returned when user fields fail validation
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrNoBalance):
		return CodeNoBalance
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidComment):
		return CodeInvalidComment
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LedgerError represents an error raised while mutating a user's balance
type LedgerError struct {
	UserID    uint64
	Operation string
	Amount    string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s failed for user %d (amount: %s): %v",
		e.Operation, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger operation error
func NewLedgerError(operation string, userID uint64, amount string, err error) *LedgerError {
	return &LedgerError{
		UserID:    userID,
		Operation: operation,
		Amount:    amount,
		Err:       err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNoBalanceError checks if the error indicates a missing balance row
func IsNoBalanceError(err error) bool {
	return errors.Is(err, ErrNoBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsDomainError reports whether the error is one of the expected business
// failures that abort a unit of work with zero side effects
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrNoBalance) ||
		errors.Is(err, ErrInsufficientFunds)
}
