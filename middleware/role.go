package middleware

import (
	"farmhub/models"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin blocks requests whose authenticated principal does not hold
// the admin role. It must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != models.RoleAdmin {
			utils.RespondError(c, utils.Forbidden("Admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
