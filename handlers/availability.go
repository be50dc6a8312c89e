// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// GetAvailabilityHandler serves GET /api/availability?serviceType=...&date=YYYY-MM-DD&timezone=...
func GetAvailabilityHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceType := models.ServiceType(c.Query("serviceType"))
		date := c.Query("date")
		clientTZ := c.Query("timezone")

		if serviceType == "" || date == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing parameters", "serviceType and date are required")
			return
		}

		result, err := svc.GetAvailability(c.Request.Context(), serviceType, date, clientTZ)
		if err != nil {
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
