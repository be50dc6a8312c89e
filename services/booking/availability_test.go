package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

func chicagoT(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// mondayInput is a baseline computation: Standard Notary on Monday
// 2025-06-30, 09:00-17:00, requested the evening before so lead time does not
// filter anything.
func mondayInput(loc *time.Location) AvailabilityInput {
	return AvailabilityInput{
		ServiceType: models.ServiceStandardNotary,
		Date:        "2025-06-30",
		Location:    loc,
		Hours:       &models.DayHours{Start: "09:00", End: "17:00"},
		Now:         time.Date(2025, 6, 29, 18, 0, 0, 0, loc),
		LeadTime:    2 * time.Hour,
	}
}

func TestComputeAvailableSlotsUnknownService(t *testing.T) {
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}
	in := mondayInput(chicagoT(t))
	in.ServiceType = "MASSAGE"

	_, err := engine.ComputeAvailableSlots(in)
	var unknown *UnknownServiceError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownServiceError", err)
	}
}

func TestComputeAvailableSlotsClosedDay(t *testing.T) {
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}
	in := mondayInput(chicagoT(t))
	in.Hours = nil

	slots, err := engine.ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed day produced %d slots", len(slots))
	}
}

func TestComputeAvailableSlotsFullDay(t *testing.T) {
	loc := chicagoT(t)
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}

	slots, err := engine.ComputeAvailableSlots(mondayInput(loc))
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}

	// 60-minute service, 09:00-17:00, 15-minute steps: starts 09:00..16:00.
	if len(slots) != 29 {
		t.Fatalf("got %d slots, want 29", len(slots))
	}
	first := time.Date(2025, 6, 30, 9, 0, 0, 0, loc)
	last := time.Date(2025, 6, 30, 16, 0, 0, 0, loc)
	if !slots[0].StartTime.Equal(first) {
		t.Fatalf("first slot = %v, want %v", slots[0].StartTime, first)
	}
	if !slots[len(slots)-1].StartTime.Equal(last) {
		t.Fatalf("last slot = %v, want %v", slots[len(slots)-1].StartTime, last)
	}

	for i := 1; i < len(slots); i++ {
		if !slots[i].StartTime.After(slots[i-1].StartTime) {
			t.Fatalf("slots out of order at %d: %v then %v", i, slots[i-1].StartTime, slots[i].StartTime)
		}
	}
	for _, s := range slots {
		if !s.EndTime.Equal(s.StartTime.Add(60 * time.Minute)) {
			t.Fatalf("slot %v has end %v, want start+60m", s.StartTime, s.EndTime)
		}
		if s.EndTime.After(time.Date(2025, 6, 30, 17, 0, 0, 0, loc)) {
			t.Fatalf("slot %v ends after closing", s.StartTime)
		}
	}
}

func TestComputeAvailableSlotsExcludesOverlaps(t *testing.T) {
	loc := chicagoT(t)
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}

	in := mondayInput(loc)
	in.Bookings = []models.BookedInterval{{
		Start: time.Date(2025, 6, 30, 10, 0, 0, 0, loc),
		End:   time.Date(2025, 6, 30, 11, 0, 0, 0, loc),
	}}

	slots, err := engine.ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}

	for _, s := range slots {
		if s.StartTime.Before(in.Bookings[0].End) && in.Bookings[0].Start.Before(s.EndTime) {
			t.Fatalf("slot %v-%v overlaps booked 10:00-11:00", s.StartTime, s.EndTime)
		}
	}

	// Back-to-back slots survive: a 60-minute slot ending exactly at 10:00
	// and one starting exactly at 11:00.
	wantStarts := []time.Time{
		time.Date(2025, 6, 30, 9, 0, 0, 0, loc),
		time.Date(2025, 6, 30, 11, 0, 0, 0, loc),
	}
	for _, want := range wantStarts {
		found := false
		for _, s := range slots {
			if s.StartTime.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected adjacent slot starting %v to survive", want)
		}
	}
}

func TestComputeAvailableSlotsLeadTime(t *testing.T) {
	loc := chicagoT(t)
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}

	in := mondayInput(loc)
	// Same-day request at 10:07 with 2h lead: earliest start 12:15.
	in.Now = time.Date(2025, 6, 30, 10, 7, 0, 0, loc)

	slots, err := engine.ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected afternoon slots")
	}
	want := time.Date(2025, 6, 30, 12, 15, 0, 0, loc)
	if !slots[0].StartTime.Equal(want) {
		t.Fatalf("first slot = %v, want %v", slots[0].StartTime, want)
	}
}

func TestComputeAvailableSlotsHoursOverride(t *testing.T) {
	loc := chicagoT(t)
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}

	// RON ignores posted hours entirely; even a closed day offers slots.
	in := AvailabilityInput{
		ServiceType: models.ServiceRON,
		Date:        "2025-06-30",
		Location:    loc,
		Hours:       nil,
		Now:         time.Date(2025, 6, 29, 18, 0, 0, 0, loc),
		LeadTime:    2 * time.Hour,
	}
	slots, err := engine.ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("RON should offer slots regardless of posted hours")
	}
	if !slots[0].StartTime.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, loc)) {
		t.Fatalf("first RON slot = %v, want midnight", slots[0].StartTime)
	}
}

func TestComputeAvailableSlotsOffBoundaryOpening(t *testing.T) {
	loc := chicagoT(t)
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}

	in := mondayInput(loc)
	in.Hours = &models.DayHours{Start: "09:10", End: "12:00"}

	slots, err := engine.ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected slots for a 09:10-12:00 day")
	}
	want := time.Date(2025, 6, 30, 9, 15, 0, 0, loc)
	if !slots[0].StartTime.Equal(want) {
		t.Fatalf("first slot = %v, want %v", slots[0].StartTime, want)
	}
	for _, s := range slots {
		if s.StartTime.Minute()%15 != 0 || s.StartTime.Second() != 0 {
			t.Fatalf("slot %v not on a quarter-hour boundary", s.StartTime)
		}
	}
}

func TestComputeAvailableSlotsInvalidDate(t *testing.T) {
	engine := &AvailabilityEngine{Catalog: DefaultCatalog()}
	in := mondayInput(chicagoT(t))
	in.Date = "June 30th"

	_, err := engine.ComputeAvailableSlots(in)
	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidDateError", err)
	}
}
