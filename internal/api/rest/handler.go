package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-greeting-cards/internal/api/shared/dto"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/executor"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListCards searches the displayed collection
	// GET /api/v1/cards?search=<term>&festival=<festival>&date_range=<all|today|week|month|year>&owner=<address>&has_image=<bool>&message_length=<any|short|medium|long>&sort_by=<key>&sort_order=<asc|desc>&limit=<limit>&offset=<offset>
	ListCards(c *gin.Context)

	// GetCard retrieves a displayed card by token id
	// GET /api/v1/cards/:token_id
	GetCard(c *gin.Context)

	// ReloadCards reloads the latest window from the chain
	// POST /api/v1/cards/reload
	ReloadCards(c *gin.Context)

	// TransferCard transfers a card to a recipient (requires authentication)
	// POST /api/v1/cards/:token_id/transfer
	TransferCard(c *gin.Context)

	// ApproveCard approves an operator for a card (requires authentication)
	// POST /api/v1/cards/:token_id/approve
	ApproveCard(c *gin.Context)

	// RevokeCardApproval clears the approved operator (requires authentication)
	// POST /api/v1/cards/:token_id/revoke
	RevokeCardApproval(c *gin.Context)

	// BurnCard burns a card (requires authentication)
	// POST /api/v1/cards/:token_id/burn
	BurnCard(c *gin.Context)

	// GetWallet returns the wallet session status
	// GET /api/v1/wallet
	GetWallet(c *gin.Context)

	// DisconnectWallet drops the signing key (requires authentication)
	// POST /api/v1/wallet/disconnect
	DisconnectWallet(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) ListCards(c *gin.Context) {
	queryParams, err := ParseListCardsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListCards(
		c.Request.Context(),
		queryParams.Criteria(),
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to list cards")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetCard(c *gin.Context) {
	tokenID, err := parseTokenID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	card, err := h.executor.GetCard(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Card not found", logger.TokenID(tokenID))
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *handler) ReloadCards(c *gin.Context) {
	response, err := h.executor.ReloadCards(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to reload cards")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TransferCard(c *gin.Context) {
	tokenID, err := parseTokenID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.TransferCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.TransferCard(c.Request.Context(), tokenID, req.Recipient)
	if err != nil {
		respondError(c, err, "Failed to transfer card", logger.TokenID(tokenID))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ApproveCard(c *gin.Context) {
	tokenID, err := parseTokenID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.ApproveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.ApproveCard(c.Request.Context(), tokenID, req.Operator)
	if err != nil {
		respondError(c, err, "Failed to approve operator", logger.TokenID(tokenID))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RevokeCardApproval(c *gin.Context) {
	tokenID, err := parseTokenID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.RevokeCardApproval(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to revoke approval", logger.TokenID(tokenID))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) BurnCard(c *gin.Context) {
	tokenID, err := parseTokenID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.BurnCard(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to burn card", logger.TokenID(tokenID))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetWallet(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetWallet(c.Request.Context()))
}

func (h *handler) DisconnectWallet(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.DisconnectWallet(c.Request.Context()))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-greeting-cards-api",
	})
}
