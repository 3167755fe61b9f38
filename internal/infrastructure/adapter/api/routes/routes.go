package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	balanceHandler *handler.BalanceHandler,
	userHandler *handler.UserHandler,
) {
	api := router.Group("/api")
	{
		api.POST("/deposit", balanceHandler.Deposit)
		api.POST("/withdraw", balanceHandler.Withdraw)
		api.POST("/transfer", balanceHandler.Transfer)
		api.GET("/balance/:userId", balanceHandler.GetBalance)

		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:userId", userHandler.GetUser)
		api.GET("/users/:userId/transactions", balanceHandler.ListTransactions)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
