package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-greeting-cards/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Card endpoints (public read access)
		v1.GET("/cards", handler.ListCards)
		v1.GET("/cards/:token_id", handler.GetCard)

		// Reload reads the chain only (open, no authentication required)
		v1.POST("/cards/reload", handler.ReloadCards)

		// Card actions sign with the connected wallet (requires authentication)
		actions := v1.Group("/cards/:token_id", middleware.Auth(authCfg))
		actions.POST("/transfer", handler.TransferCard)
		actions.POST("/approve", handler.ApproveCard)
		actions.POST("/revoke", handler.RevokeCardApproval)
		actions.POST("/burn", handler.BurnCard)

		// Wallet endpoints
		v1.GET("/wallet", handler.GetWallet)
		v1.POST("/wallet/disconnect", middleware.Auth(authCfg), handler.DisconnectWallet)
	}
}
