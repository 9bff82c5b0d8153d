package routes

import (
	"net/http"
	"time"

	"farmhub/handlers"
	"farmhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.POST("/register", hb.Auth.Register)
	r.POST("/login", hb.Auth.Login)
	r.POST("/password/forgot", hb.Auth.ForgotPassword)
	r.PUT("/password/reset/:token", hb.Auth.ResetPassword)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	protected.GET("/logout", hb.Auth.Logout)
}

// RegisterUserRoutes registers profile, search and rating endpoints.
func RegisterUserRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.GET("/me", hb.User.Me)
	api.PUT("/me/update", hb.User.UpdateMe)
	api.GET("/users/search", hb.User.SearchUsers)
	api.POST("/users/rate/:id", hb.User.RateUser)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
	admin.GET("/users", hb.User.AllUsers)
	admin.GET("/user/:id", hb.User.UserDetails)
}

// RegisterProductRoutes registers catalogue and review endpoints. Listing and
// detail are public; mutation is admin-only.
func RegisterProductRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.GET("/products", hb.Product.List)
	r.GET("/product/:id", hb.Product.Get)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	protected.PUT("/review", hb.Product.Review)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
	admin.POST("/product/new", hb.Product.Create)
	admin.PUT("/product/:id", hb.Product.Update)
	admin.DELETE("/product/:id", hb.Product.Delete)
}

// RegisterTradeRoutes registers trade lifecycle endpoints.
func RegisterTradeRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.POST("/trade/new", hb.Trade.New)
	api.GET("/trades/me", hb.Trade.Mine)
	api.GET("/trade/:id", hb.Trade.Get)
	api.PUT("/trade/:id", hb.Trade.Update)
	api.POST("/trade/rate/:id", hb.Trade.Rate)
}

// RegisterConsultationRoutes registers consultation lifecycle endpoints.
func RegisterConsultationRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	api.POST("/consultation/new", hb.Consultation.New)
	api.GET("/consultations/me", hb.Consultation.Mine)
	api.GET("/consultation/:id", hb.Consultation.Get)
	api.PUT("/consultation/:id", hb.Consultation.Update)
	api.POST("/consultation/rate/:id", hb.Consultation.Rate)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FarmHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	RegisterAuthRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterProductRoutes(api, hb)
	RegisterTradeRoutes(api, hb)
	RegisterConsultationRoutes(api, hb)
	RegisterHealthRoute(r)
}
