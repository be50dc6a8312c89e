package booking

import (
	"math"
	"time"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// PricingEngine computes price breakdowns. Pure: the catalog and surcharge
// configuration are injected at construction and nothing is cached between
// calls.
type PricingEngine struct {
	Catalog Catalog
	Config  PricingConfig
}

// QuoteInput carries everything one price computation needs. ScheduledAt
// must already be in the business timezone; Hours are the posted hours for
// its weekday (nil when none are posted).
type QuoteInput struct {
	ServiceType   models.ServiceType
	ScheduledAt   time.Time
	DocumentCount int
	SignerCount   int
	// DistanceMiles is the measured travel distance from the base
	// location. nil means the caller did not resolve one, which is
	// distinct from a measured zero.
	DistanceMiles *float64
	Hours         *models.DayHours
}

// Quote computes the full price breakdown. An unknown service type is a hard
// failure. When the service requires an address, travel pricing is enabled,
// and no distance was supplied, the quote comes back with status
// "incomplete" rather than a silently omitted travel fee.
func (e *PricingEngine) Quote(in QuoteInput) (*models.PricingBreakdown, error) {
	def, err := e.Catalog.Get(in.ServiceType)
	if err != nil {
		return nil, err
	}

	breakdown := &models.PricingBreakdown{
		ServiceType: in.ServiceType,
		BasePrice:   def.BasePrice,
		Status:      models.QuotePriced,
	}

	// Document increments are a per-service lookup, not a formula.
	// IncludedDocuments of zero means unlimited.
	if def.IncludedDocuments > 0 && in.DocumentCount > def.IncludedDocuments {
		extra := in.DocumentCount - def.IncludedDocuments
		breakdown.ExtraDocumentFee = float64(extra) * def.ExtraDocumentFee
	}

	// After-hours and weekend surcharges are independent and additive.
	if isAfterHours(in.ScheduledAt, hoursForService(def, in.Hours)) {
		breakdown.Surcharges = append(breakdown.Surcharges, models.SurchargeLine{
			Code:        "after_hours",
			Description: "Outside posted business hours",
			Amount:      e.Config.AfterHoursSurcharge,
		})
	}
	if wd := in.ScheduledAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
		breakdown.Surcharges = append(breakdown.Surcharges, models.SurchargeLine{
			Code:        "weekend",
			Description: "Weekend service",
			Amount:      e.Config.WeekendSurcharge,
		})
	}
	for _, line := range breakdown.Surcharges {
		breakdown.SurchargeTotal += line.Amount
	}

	// Travel fee. A nil TravelFee means travel pricing is disabled or not
	// applicable; a computed zero within the included radius stays
	// explicit.
	if e.Config.TravelFeeEnabled && def.RequiresAddress {
		if in.DistanceMiles == nil {
			breakdown.Status = models.QuoteIncomplete
			breakdown.IncompleteReason = "travel distance unknown; this service requires an address"
		} else {
			breakdown.TravelFee = travelFee(def, *in.DistanceMiles)
		}
	}

	breakdown.Total = breakdown.BasePrice + breakdown.ExtraDocumentFee + breakdown.SurchargeTotal
	if breakdown.TravelFee != nil {
		breakdown.Total += breakdown.TravelFee.Amount
	}
	return breakdown, nil
}

func travelFee(def models.ServiceDefinition, distance float64) *models.TravelFee {
	billable := distance - def.IncludedRadiusMiles
	if billable < 0 {
		billable = 0
	}
	amount := math.Round(billable*def.PerMileRate*100) / 100
	return &models.TravelFee{
		DistanceMiles: distance,
		BillableMiles: billable,
		PerMileRate:   def.PerMileRate,
		Amount:        amount,
	}
}

// isAfterHours reports whether the wall-clock time falls before opening or
// at/after closing. A day with no posted hours is entirely after-hours.
func isAfterHours(t time.Time, hours *models.DayHours) bool {
	if hours == nil {
		return true
	}
	open, err := parseClock(hours.Start)
	if err != nil {
		return true
	}
	closing, err := parseClock(hours.End)
	if err != nil {
		return true
	}
	minute := t.Hour()*60 + t.Minute()
	return minute < open || minute >= closing
}
