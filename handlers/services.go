// File: handlers/services.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
)

// ListServicesHandler serves GET /api/services.
func ListServicesHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"services": svc.ListServices()})
	}
}
