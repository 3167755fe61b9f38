package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the user directory endpoints
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles the POST /api/users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrDuplicateUser):
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User with this email already exists",
			})
		case errors.Is(err, domainerr.ErrInvalidUserData):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: err.Error(),
			})
		default:
			h.logger.Error("Failed to create user", map[string]any{
				"email": req.Email,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// GetUser handles the GET /api/users/:userId endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}
		h.logger.Error("Failed to get user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
