package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/handlers"
	"github.com/KennyLightfoot/hmnp-site-sub021/middleware"
)

// RegisterAvailabilityRoutes registers the slot-computation endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.GetAvailabilityHandler)
	}
}

// RegisterPricingRoutes registers the quote endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.QuoteHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoint.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
	}
}

// RegisterAssistantRoutes registers the booking assistant endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", hb.AssistantChatHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. Login is
// public; everything else requires an admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/logout", hb.AdminLogoutHandler)
		adminGroup.GET("/settings", hb.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.UpdateSettingsHandler)
		adminGroup.DELETE("/bookings/:id", hb.StaffCancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
