// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// CreateBookingHandler serves POST /api/bookings.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		created, err := svc.CreateBooking(c.Request.Context(), req)
		if err != nil {
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetBookingHandler serves GET /api/bookings/:id.
func GetBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.GetBooking(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler serves DELETE /api/bookings/:id (customer-initiated).
// Staff cancellations go through the admin route instead.
func CancelBookingHandler(svc booking.BookingService, byStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelBooking(c.Request.Context(), c.Param("id"), byStaff); err != nil {
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
