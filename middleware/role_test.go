package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farmhub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userRole", role)
		c.Next()
	}, RequireAdmin())
	router.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	t.Run("AdminPasses", func(t *testing.T) {
		w := httptest.NewRecorder()
		roleRouter(models.RoleAdmin).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		roleRouter(models.RoleFarmer).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Admin role required")
	})
}
