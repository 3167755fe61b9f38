package dto

// DepositRequest is the request body for POST /api/deposit. Amounts travel
// as decimal strings so no precision is lost in JSON number parsing.
type DepositRequest struct {
	UserID  uint64 `json:"user_id" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Comment string `json:"comment" binding:"omitempty,max=255"`
}

// WithdrawRequest is the request body for POST /api/withdraw
type WithdrawRequest struct {
	UserID  uint64 `json:"user_id" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Comment string `json:"comment" binding:"omitempty,max=255"`
}

// TransferRequest is the request body for POST /api/transfer
type TransferRequest struct {
	FromUserID uint64 `json:"from_user_id" binding:"required"`
	ToUserID   uint64 `json:"to_user_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Comment    string `json:"comment" binding:"omitempty,max=255"`
}
