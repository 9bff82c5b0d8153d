package handlers

import (
	"net/http"

	"farmhub/models"
	"farmhub/services/trade"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

// TradeHandler serves trade lifecycle endpoints.
type TradeHandler struct {
	Service trade.TradeService
}

// NewTradeHandler creates a TradeHandler.
func NewTradeHandler(svc trade.TradeService) *TradeHandler {
	return &TradeHandler{Service: svc}
}

// New handles POST /trade/new.
func (h *TradeHandler) New(c *gin.Context) {
	var req models.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	tr, err := h.Service.Create(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "trade": tr})
}

// Mine handles GET /trades/me.
func (h *TradeHandler) Mine(c *gin.Context) {
	trades, err := h.Service.Mine(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trades": trades})
}

// Get handles GET /trade/:id.
func (h *TradeHandler) Get(c *gin.Context) {
	tr, err := h.Service.Get(c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trade": tr})
}

// Update handles PUT /trade/:id, transitioning the trade's status.
func (h *TradeHandler) Update(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	tr, err := h.Service.Transition(c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trade": tr})
}

// Rate handles POST /trade/rate/:id.
func (h *TradeHandler) Rate(c *gin.Context) {
	var req models.TradeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	if err := h.Service.Rate(c.GetString("userID"), c.Param("id"), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trade rated successfully"})
}
