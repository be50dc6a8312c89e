// File: handlers/pricing.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// QuoteHandler serves POST /api/pricing/quote.
func QuoteHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		breakdown, err := svc.Quote(c.Request.Context(), req)
		if err != nil {
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, breakdown)
	}
}
