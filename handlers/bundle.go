// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	settingsRepoPkg "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/settings"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	SettingsRepo settingsRepoPkg.SettingsRepository

	// Availability and pricing endpoints
	GetAvailabilityHandler gin.HandlerFunc
	QuoteHandler           gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Catalog endpoint
	ListServicesHandler gin.HandlerFunc

	// Assistant endpoint
	AssistantChatHandler gin.HandlerFunc

	// Admin endpoints
	AdminLoginHandler         gin.HandlerFunc
	AdminLogoutHandler        gin.HandlerFunc
	GetSettingsHandler        gin.HandlerFunc
	UpdateSettingsHandler     gin.HandlerFunc
	StaffCancelBookingHandler gin.HandlerFunc
}
