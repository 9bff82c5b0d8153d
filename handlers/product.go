package handlers

import (
	"net/http"

	productRepo "farmhub/database/repository/product"
	"farmhub/models"
	"farmhub/services/product"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves catalogue and review endpoints.
type ProductHandler struct {
	Service product.ProductService
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// Create handles POST /admin/product/new.
func (h *ProductHandler) Create(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	prod, err := h.Service.Create(c.GetString("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": prod})
}

// List handles GET /products with keyword search, filters and pagination.
func (h *ProductHandler) List(c *gin.Context) {
	criteria := productRepo.ParseSearchCriteria(c.Request.URL.Query())

	products, total, err := h.Service.Search(criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(products),
		"productsCount": total,
		"resPerPage":    productRepo.ResultsPerPage,
		"products":      products,
	})
}

// Get handles GET /product/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	prod, err := h.Service.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": prod})
}

// Update handles PUT /admin/product/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	prod, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": prod})
}

// Delete handles DELETE /admin/product/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product is deleted"})
}

// Review handles PUT /review, upserting the caller's review on a product.
func (h *ProductHandler) Review(c *gin.Context) {
	var req models.ProductReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validation(err.Error()))
		return
	}

	if err := h.Service.UpsertReview(c.GetString("userID"), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
