package handlers

import (
	"net/http"

	"farmhub/models"
	"farmhub/services/consultation"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler serves consultation lifecycle endpoints.
type ConsultationHandler struct {
	Service consultation.ConsultationService
}

// NewConsultationHandler creates a ConsultationHandler.
func NewConsultationHandler(svc consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{Service: svc}
}

// New handles POST /consultation/new.
func (h *ConsultationHandler) New(c *gin.Context) {
	var req models.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	cons, err := h.Service.Create(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "consultation": cons})
}

// Mine handles GET /consultations/me.
func (h *ConsultationHandler) Mine(c *gin.Context) {
	consultations, err := h.Service.Mine(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "consultations": consultations})
}

// Get handles GET /consultation/:id.
func (h *ConsultationHandler) Get(c *gin.Context) {
	cons, err := h.Service.Get(c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "consultation": cons})
}

// Update handles PUT /consultation/:id, transitioning the status.
func (h *ConsultationHandler) Update(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	cons, err := h.Service.Transition(c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "consultation": cons})
}

// Rate handles POST /consultation/rate/:id.
func (h *ConsultationHandler) Rate(c *gin.Context) {
	var req models.ConsultationRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	if err := h.Service.Rate(c.GetString("userID"), c.Param("id"), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consultation rated successfully"})
}
