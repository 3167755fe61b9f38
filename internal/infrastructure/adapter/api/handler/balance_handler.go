package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BalanceHandler handles the ledger mutation and balance lookup endpoints
type BalanceHandler struct {
	balanceUseCase usecase.BalanceUseCase
	logger         coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(
	balanceUseCase usecase.BalanceUseCase,
	logger coreport.Logger,
) *BalanceHandler {
	return &BalanceHandler{
		balanceUseCase: balanceUseCase,
		logger:         logger,
	}
}

// Deposit handles the POST /api/deposit endpoint
func (h *BalanceHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.balanceUseCase.Deposit(c.Request.Context(), req.UserID, req.Amount, req.Comment)
	if err != nil {
		// A rejected amount on a deposit is a plain bad request; there is no
		// balance state it could conflict with.
		h.writeError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Withdraw handles the POST /api/withdraw endpoint
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.balanceUseCase.Withdraw(c.Request.Context(), req.UserID, req.Amount, req.Comment)
	if err != nil {
		h.writeError(c, err, http.StatusConflict)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Transfer handles the POST /api/transfer endpoint
func (h *BalanceHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.balanceUseCase.Transfer(c.Request.Context(), req.FromUserID, req.ToUserID, req.Amount, req.Comment)
	if err != nil {
		h.writeError(c, err, http.StatusConflict)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBalance handles the GET /api/balance/:userId endpoint
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	result, err := h.balanceUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTransactions handles the GET /api/users/:userId/transactions endpoint
func (h *BalanceHandler) ListTransactions(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	records, err := h.balanceUseCase.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": records})
}

// writeError maps a use case error to an HTTP response. invalidAmountStatus
// is the status for amount validation failures: 400 on deposits, 409 on the
// debiting operations.
func (h *BalanceHandler) writeError(c *gin.Context, err error, invalidAmountStatus int) {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow):
		status = invalidAmountStatus
	case errors.Is(err, domainerr.ErrSelfTransfer),
		errors.Is(err, domainerr.ErrInvalidComment),
		errors.Is(err, domainerr.ErrInvalidUserID):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrNoBalance),
		errors.Is(err, domainerr.ErrInsufficientFunds):
		status = http.StatusConflict
	case errors.Is(err, domainerr.ErrUserNotFound):
		status = http.StatusNotFound
	default:
		h.logger.Error("Unexpected error handling request", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// bindJSON binds and validates the JSON request body, writing a 422 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return false
	}
	return true
}

// parseUserIDParam parses the :userId path parameter
func parseUserIDParam(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}
