package handlers

import (
	"net/http"
	"strconv"

	"farmhub/models"
	"farmhub/services/user"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profile, search and rating endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Me handles GET /me.
func (h *UserHandler) Me(c *gin.Context) {
	usr, err := h.Service.GetProfile(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}

// UpdateMe handles PUT /me/update.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	usr, err := h.Service.UpdateProfile(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}

// SearchUsers handles GET /users/search?role=&latitude=&longitude=&maxDistance=.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	role := c.Query("role")
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if role == "" || latStr == "" || lngStr == "" {
		utils.RespondError(c, utils.Validation("Please provide role, latitude and longitude"))
		return
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.RespondError(c, utils.Validation("Invalid latitude"))
		return
	}
	longitude, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		utils.RespondError(c, utils.Validation("Invalid longitude"))
		return
	}
	maxDistance, _ := strconv.Atoi(c.DefaultQuery("maxDistance", "10000"))

	users, err := h.Service.Search(role, longitude, latitude, maxDistance)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

// RateUser handles POST /users/rate/:id.
func (h *UserHandler) RateUser(c *gin.Context) {
	var req struct {
		Rating  float64 `json:"rating" binding:"required"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	if err := h.Service.Rate(c.GetString("userID"), c.Param("id"), req.Rating, req.Comment); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rating submitted successfully"})
}

// AllUsers handles GET /admin/users.
func (h *UserHandler) AllUsers(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

// UserDetails handles GET /admin/user/:id.
func (h *UserHandler) UserDetails(c *gin.Context) {
	usr, err := h.Service.GetUserDetails(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}
