package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

func newBalanceRouter(balanceUseCase usecase.BalanceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBalanceHandler(balanceUseCase, logger.NewNoopLogger())
	router.POST("/api/deposit", h.Deposit)
	router.POST("/api/withdraw", h.Withdraw)
	router.POST("/api/transfer", h.Transfer)
	router.GET("/api/balance/:userId", h.GetBalance)
	router.GET("/api/users/:userId/transactions", h.ListTransactions)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code int, message string) {
	t.Helper()
	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code, resp.Message
}

func TestDepositEndpoint(t *testing.T) {
	t.Run("successful deposit", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Deposit", mock.Anything, uint64(1), "100.00", "salary").
			Return(&usecase.OperationResult{UserID: 1, Amount: "100.00", Balance: "100.00", Comment: "salary"}, nil)

		w := postJSON(t, newBalanceRouter(uc), "/api/deposit",
			gin.H{"user_id": 1, "amount": "100.00", "comment": "salary"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp usecase.OperationResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "100.00", resp.Balance)
		uc.AssertExpectations(t)
	})

	t.Run("missing amount is a validation failure", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)

		w := postJSON(t, newBalanceRouter(uc), "/api/deposit", gin.H{"user_id": 1})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Deposit")
	})

	t.Run("invalid amount maps to 400", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Deposit", mock.Anything, uint64(1), "-5.00", "").
			Return(nil, domainerr.ErrNegativeAmount)

		w := postJSON(t, newBalanceRouter(uc), "/api/deposit",
			gin.H{"user_id": 1, "amount": "-5.00"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		code, _ := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInvalidAmount, code)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Deposit", mock.Anything, uint64(99), "10.00", "").
			Return(nil, domainerr.ErrUserNotFound)

		w := postJSON(t, newBalanceRouter(uc), "/api/deposit",
			gin.H{"user_id": 99, "amount": "10.00"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage failure maps to generic 500", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Deposit", mock.Anything, uint64(1), "10.00", "").
			Return(nil, domainerr.ErrDatabaseConnection)

		w := postJSON(t, newBalanceRouter(uc), "/api/deposit",
			gin.H{"user_id": 1, "amount": "10.00"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		_, message := decodeError(t, w)
		assert.Equal(t, "Internal server error", message)
	})
}

func TestWithdrawEndpoint(t *testing.T) {
	t.Run("successful withdraw", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Withdraw", mock.Anything, uint64(1), "50.00", "").
			Return(&usecase.OperationResult{UserID: 1, Amount: "50.00", Balance: "50.00"}, nil)

		w := postJSON(t, newBalanceRouter(uc), "/api/withdraw",
			gin.H{"user_id": 1, "amount": "50.00"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("insufficient funds maps to 409", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Withdraw", mock.Anything, uint64(1), "500.00", "").
			Return(nil, domainerr.NewInsufficientFundsError(1, "500.00", "100.00"))

		w := postJSON(t, newBalanceRouter(uc), "/api/withdraw",
			gin.H{"user_id": 1, "amount": "500.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
		code, _ := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInsufficientFunds, code)
	})

	t.Run("no balance row maps to 409", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Withdraw", mock.Anything, uint64(1), "10.00", "").
			Return(nil, domainerr.ErrNoBalance)

		w := postJSON(t, newBalanceRouter(uc), "/api/withdraw",
			gin.H{"user_id": 1, "amount": "10.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid amount maps to 409 on withdraw", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Withdraw", mock.Anything, uint64(1), "0", "").
			Return(nil, domainerr.ErrInvalidAmount)

		w := postJSON(t, newBalanceRouter(uc), "/api/withdraw",
			gin.H{"user_id": 1, "amount": "0"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTransferEndpoint(t *testing.T) {
	t.Run("successful transfer", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Transfer", mock.Anything, uint64(1), uint64(2), "25.00", "rent").
			Return(&usecase.TransferResult{
				FromUserID:  1,
				ToUserID:    2,
				Amount:      "25.00",
				FromBalance: "75.00",
				ToBalance:   "25.00",
				Comment:     "rent",
			}, nil)

		w := postJSON(t, newBalanceRouter(uc), "/api/transfer",
			gin.H{"from_user_id": 1, "to_user_id": 2, "amount": "25.00", "comment": "rent"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp usecase.TransferResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "75.00", resp.FromBalance)
		assert.Equal(t, "25.00", resp.ToBalance)
	})

	t.Run("self transfer maps to 422", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Transfer", mock.Anything, uint64(1), uint64(1), "25.00", "").
			Return(nil, domainerr.ErrSelfTransfer)

		w := postJSON(t, newBalanceRouter(uc), "/api/transfer",
			gin.H{"from_user_id": 1, "to_user_id": 1, "amount": "25.00"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		code, _ := decodeError(t, w)
		assert.Equal(t, domainerr.CodeSelfTransfer, code)
	})

	t.Run("insufficient funds maps to 409", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("Transfer", mock.Anything, uint64(1), uint64(2), "25.00", "").
			Return(nil, domainerr.ErrInsufficientFunds)

		w := postJSON(t, newBalanceRouter(uc), "/api/transfer",
			gin.H{"from_user_id": 1, "to_user_id": 2, "amount": "25.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetBalanceEndpoint(t *testing.T) {
	t.Run("returns balance", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("GetBalance", mock.Anything, uint64(1)).
			Return(&usecase.BalanceResult{UserID: 1, Balance: "750.00"}, nil)

		w := getJSON(t, newBalanceRouter(uc), "/api/balance/1")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp usecase.BalanceResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "750.00", resp.Balance)
	})

	t.Run("non-numeric user id maps to 400", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)

		w := getJSON(t, newBalanceRouter(uc), "/api/balance/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "GetBalance")
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		uc := new(mockusecase.MockBalanceUseCase)
		uc.On("GetBalance", mock.Anything, uint64(42)).
			Return(nil, domainerr.ErrUserNotFound)

		w := getJSON(t, newBalanceRouter(uc), "/api/balance/42")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListTransactionsEndpoint(t *testing.T) {
	uc := new(mockusecase.MockBalanceUseCase)
	uc.On("ListTransactions", mock.Anything, uint64(1)).
		Return([]*usecase.TransactionRecord{
			{ID: 1, UserID: 1, Type: "deposit", Amount: "100.00", BalanceBefore: "0.00", BalanceAfter: "100.00"},
			{ID: 2, UserID: 1, Type: "withdraw", Amount: "25.00", BalanceBefore: "100.00", BalanceAfter: "75.00"},
		}, nil)

	w := getJSON(t, newBalanceRouter(uc), "/api/users/1/transactions")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Transactions []*usecase.TransactionRecord `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "deposit", resp.Transactions[0].Type)
	assert.Equal(t, "75.00", resp.Transactions[1].BalanceAfter)
}
