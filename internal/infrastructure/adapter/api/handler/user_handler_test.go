package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"encoding/json"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

func newUserRouter(userUseCase usecase.UserUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUserHandler(userUseCase, logger.NewNoopLogger())
	router.POST("/api/users", h.CreateUser)
	router.GET("/api/users/:userId", h.GetUser)
	return router
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		uc := new(mockusecase.MockUserUseCase)
		uc.On("CreateUser", mock.Anything, "Ivan Ivanov", "ivan@example.com").
			Return(&entity.User{
				ID:        1,
				Name:      "Ivan Ivanov",
				Email:     "ivan@example.com",
				CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil)

		w := postJSON(t, newUserRouter(uc), "/api/users",
			gin.H{"name": "Ivan Ivanov", "email": "ivan@example.com"})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.ID)
		assert.Equal(t, "ivan@example.com", resp.Email)
	})

	t.Run("invalid email is a validation failure", func(t *testing.T) {
		uc := new(mockusecase.MockUserUseCase)

		w := postJSON(t, newUserRouter(uc), "/api/users",
			gin.H{"name": "Ivan Ivanov", "email": "not-an-email"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "CreateUser")
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		uc := new(mockusecase.MockUserUseCase)
		uc.On("CreateUser", mock.Anything, "Ivan Ivanov", "ivan@example.com").
			Return(nil, domainerr.ErrDuplicateUser)

		w := postJSON(t, newUserRouter(uc), "/api/users",
			gin.H{"name": "Ivan Ivanov", "email": "ivan@example.com"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		uc := new(mockusecase.MockUserUseCase)
		uc.On("GetUser", mock.Anything, uint64(3)).
			Return(&entity.User{ID: 3, Name: "Maria Sidorova", Email: "maria@example.com"}, nil)

		w := getJSON(t, newUserRouter(uc), "/api/users/3")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		uc := new(mockusecase.MockUserUseCase)
		uc.On("GetUser", mock.Anything, uint64(99)).
			Return(nil, domainerr.ErrUserNotFound)

		w := getJSON(t, newUserRouter(uc), "/api/users/99")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
