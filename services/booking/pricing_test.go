package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

func testEngine() *PricingEngine {
	return &PricingEngine{Catalog: DefaultCatalog(), Config: DefaultPricingConfig()}
}

func ptr(f float64) *float64 { return &f }

// weekdayNoon is Monday 2025-06-30 12:00 Chicago, inside default hours.
func weekdayNoon(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 6, 30, 12, 0, 0, 0, chicagoT(t))
}

func TestQuoteUnknownService(t *testing.T) {
	_, err := testEngine().Quote(QuoteInput{ServiceType: "MASSAGE", ScheduledAt: weekdayNoon(t)})
	var unknown *UnknownServiceError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownServiceError", err)
	}
}

func TestQuoteBaseWithinRadius(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 2,
		DistanceMiles: ptr(15),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.Status != models.QuotePriced {
		t.Fatalf("status = %s, want priced", got.Status)
	}
	if got.BasePrice != 75 || got.ExtraDocumentFee != 0 || got.SurchargeTotal != 0 {
		t.Fatalf("unexpected components: %+v", got)
	}
	// Within the included radius the fee is computed and explicitly zero.
	if got.TravelFee == nil || got.TravelFee.Amount != 0 || got.TravelFee.BillableMiles != 0 {
		t.Fatalf("travel fee = %+v, want computed zero", got.TravelFee)
	}
	if got.Total != 75 {
		t.Fatalf("total = %v, want 75", got.Total)
	}
}

func TestQuoteSundayEarlyMorningSurcharges(t *testing.T) {
	// Sunday 04:00 is both a weekend and outside posted hours: both flat
	// surcharges apply.
	scheduled := time.Date(2025, 6, 29, 4, 0, 0, 0, chicagoT(t))
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   scheduled,
		DocumentCount: 1,
		DistanceMiles: ptr(5),
		Hours:         &models.DayHours{Start: "10:00", End: "15:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if len(got.Surcharges) != 2 || got.SurchargeTotal != 70 {
		t.Fatalf("surcharges = %+v (total %v), want after_hours 30 + weekend 40", got.Surcharges, got.SurchargeTotal)
	}
	if got.Total != 145 {
		t.Fatalf("total = %v, want 145", got.Total)
	}
}

func TestQuoteTravelFeeBeyondRadius(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 1,
		DistanceMiles: ptr(28),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.TravelFee == nil {
		t.Fatalf("travel fee missing")
	}
	if got.TravelFee.BillableMiles != 8 || got.TravelFee.Amount != 4 {
		t.Fatalf("travel fee = %+v, want 8 billable miles at $4.00", got.TravelFee)
	}
	if got.Total != 79 {
		t.Fatalf("total = %v, want 79", got.Total)
	}
}

func TestQuoteTravelFeeAtRadiusBoundary(t *testing.T) {
	// Exactly at the included radius the fee is computed and zero.
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 1,
		DistanceMiles: ptr(20),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.TravelFee == nil || got.TravelFee.Amount != 0 {
		t.Fatalf("travel fee at boundary = %+v, want computed zero", got.TravelFee)
	}
}

func TestQuoteTravelFeeMonotonic(t *testing.T) {
	engine := testEngine()
	quote := func(miles float64) float64 {
		got, err := engine.Quote(QuoteInput{
			ServiceType:   models.ServiceStandardNotary,
			ScheduledAt:   weekdayNoon(t),
			DocumentCount: 1,
			DistanceMiles: ptr(miles),
			Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
		})
		if err != nil {
			t.Fatalf("Quote(%v miles): %v", miles, err)
		}
		return got.TravelFee.Amount
	}

	// Within the radius the fee stays zero.
	for _, miles := range []float64{0, 10, 20} {
		if fee := quote(miles); fee != 0 {
			t.Fatalf("fee(%v) = %v, want 0 within radius", miles, fee)
		}
	}
	// Beyond the radius the fee strictly increases with distance.
	beyond := []float64{21, 25, 40, 80}
	prev := 0.0
	for _, miles := range beyond {
		fee := quote(miles)
		if fee <= prev {
			t.Fatalf("fee(%v) = %v, want > %v", miles, fee, prev)
		}
		prev = fee
	}
}

func TestQuoteTravelDisabled(t *testing.T) {
	engine := testEngine()
	engine.Config.TravelFeeEnabled = false

	got, err := engine.Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 1,
		DistanceMiles: ptr(100),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.TravelFee != nil {
		t.Fatalf("travel fee = %+v, want nil when disabled", got.TravelFee)
	}
	if got.Status != models.QuotePriced || got.Total != 75 {
		t.Fatalf("got %+v, want priced total 75", got)
	}
}

func TestQuoteRemoteServiceNoTravel(t *testing.T) {
	// RON never charges travel and its hours override runs all day, so an
	// early-morning weekday session carries no surcharges either.
	scheduled := time.Date(2025, 6, 30, 4, 0, 0, 0, chicagoT(t))
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceRON,
		ScheduledAt:   scheduled,
		DocumentCount: 1,
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.TravelFee != nil {
		t.Fatalf("RON travel fee = %+v, want nil", got.TravelFee)
	}
	if got.SurchargeTotal != 0 {
		t.Fatalf("RON surcharges = %+v, want none at 04:00", got.Surcharges)
	}
	if got.Status != models.QuotePriced || got.Total != 25 {
		t.Fatalf("got %+v, want priced total 25", got)
	}
}

func TestQuoteExtraDocuments(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 6,
		DistanceMiles: ptr(5),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	// 4 included, 2 extra at $10.
	if got.ExtraDocumentFee != 20 {
		t.Fatalf("extra document fee = %v, want 20", got.ExtraDocumentFee)
	}
	if got.Total != 95 {
		t.Fatalf("total = %v, want 95", got.Total)
	}
}

func TestQuoteUnlimitedDocuments(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceLoanSigning,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 100,
		DistanceMiles: ptr(5),
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.ExtraDocumentFee != 0 {
		t.Fatalf("loan signing extra fee = %v, want 0 (unlimited)", got.ExtraDocumentFee)
	}
}

func TestQuoteIncompleteWithoutDistance(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   weekdayNoon(t),
		DocumentCount: 1,
		DistanceMiles: nil,
		Hours:         &models.DayHours{Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.Status != models.QuoteIncomplete || got.IncompleteReason == "" {
		t.Fatalf("got status %q, want incomplete with reason", got.Status)
	}
	if got.TravelFee != nil {
		t.Fatalf("incomplete quote carries travel fee %+v", got.TravelFee)
	}
	// Everything except travel is still priced.
	if got.Total != 75 {
		t.Fatalf("total = %v, want 75 without travel", got.Total)
	}
}

func TestQuoteTotalsAddUp(t *testing.T) {
	got, err := testEngine().Quote(QuoteInput{
		ServiceType:   models.ServiceStandardNotary,
		ScheduledAt:   time.Date(2025, 6, 28, 11, 0, 0, 0, chicagoT(t)), // Saturday, within 10:00-15:00
		DocumentCount: 7,
		DistanceMiles: ptr(30),
		Hours:         &models.DayHours{Start: "10:00", End: "15:00"},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if len(got.Surcharges) != 1 || got.Surcharges[0].Code != "weekend" {
		t.Fatalf("surcharges = %+v, want weekend only", got.Surcharges)
	}
	sum := got.BasePrice + got.ExtraDocumentFee + got.SurchargeTotal
	if got.TravelFee != nil {
		sum += got.TravelFee.Amount
	}
	if got.Total != sum {
		t.Fatalf("total %v != component sum %v", got.Total, sum)
	}
	// 75 + 3*10 + 40 + 10*0.50
	if got.Total != 150 {
		t.Fatalf("total = %v, want 150", got.Total)
	}
}
