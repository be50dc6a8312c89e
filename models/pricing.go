package models

import "time"

// Quote status values. An incomplete quote carries everything except the
// travel fee and names the reason it could not be finalized.
const (
	QuotePriced     = "priced"
	QuoteIncomplete = "incomplete"
)

// TravelFee is the computed travel component of a quote. A nil *TravelFee on
// the breakdown means travel pricing was disabled or not applicable; a
// non-nil TravelFee with Amount 0 means it was computed and the destination
// is within the included radius. The two cases are deliberately distinct.
type TravelFee struct {
	DistanceMiles float64 `json:"distanceMiles"`
	BillableMiles float64 `json:"billableMiles"`
	PerMileRate   float64 `json:"perMileRate"`
	Amount        float64 `json:"amount"`
}

// SurchargeLine is one itemized flat surcharge on a quote.
type SurchargeLine struct {
	Code        string  `json:"code"` // "after_hours", "weekend"
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PricingBreakdown is the full price decomposition for a prospective booking.
// Computed fresh per request; callers may persist the total on a booking.
type PricingBreakdown struct {
	ServiceType      ServiceType     `json:"serviceType"`
	BasePrice        float64         `json:"basePrice"`
	ExtraDocumentFee float64         `json:"extraDocumentFee,omitempty"`
	Surcharges       []SurchargeLine `json:"surcharges,omitempty"`
	SurchargeTotal   float64         `json:"surchargeTotal"`
	TravelFee        *TravelFee      `json:"travelFee,omitempty"`
	Total            float64         `json:"total"`
	Status           string          `json:"status"`
	IncompleteReason string          `json:"incompleteReason,omitempty"`
}

// QuoteRequest is the pricing endpoint request body.
type QuoteRequest struct {
	ServiceType       ServiceType `json:"serviceType" binding:"required"`
	ScheduledDateTime time.Time   `json:"scheduledDateTime" binding:"required"`
	DocumentCount     int         `json:"documentCount"`
	SignerCount       int         `json:"signerCount"`
	Address           string      `json:"address,omitempty"`
}
