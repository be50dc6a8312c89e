// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/geo"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// writeBookingError maps service-layer errors onto HTTP statuses. Unknown
// errors stay opaque 500s.
func writeBookingError(c *gin.Context, err error) {
	var unknownSvc *booking.UnknownServiceError
	if errors.As(err, &unknownSvc) {
		utils.JSONError(c, http.StatusBadRequest, "unknown service type", unknownSvc.Error())
		return
	}

	var badDate *booking.InvalidDateError
	if errors.As(err, &badDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", badDate.Error())
		return
	}

	var bookingErr *booking.BookingError
	if errors.As(err, &bookingErr) {
		status := http.StatusBadRequest
		if bookingErr.Code == "slot_unavailable" {
			status = http.StatusConflict
		}
		utils.JSONError(c, status, bookingErr.Code, bookingErr.Message)
		return
	}

	var distErr *geo.DistanceError
	if errors.As(err, &distErr) {
		utils.JSONError(c, http.StatusBadGateway, "distance lookup failed",
			"could not measure travel distance to the provided address")
		return
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "not found", "")
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
}
