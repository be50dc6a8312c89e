package booking

import (
	"time"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// AvailabilityEngine computes bookable slots for a service and date. It is a
// pure function of its inputs plus the injected catalog; callers fetch the
// posted hours and existing bookings before invoking it, so each call is
// independent and safe to run concurrently.
type AvailabilityEngine struct {
	Catalog Catalog
}

// AvailabilityInput carries everything one slot computation needs.
type AvailabilityInput struct {
	ServiceType models.ServiceType
	Date        string         // "YYYY-MM-DD", interpreted in Location
	Location    *time.Location // business timezone
	// Hours are the posted hours for the date's weekday; nil means closed.
	// Service hour overrides are applied on top.
	Hours    *models.DayHours
	Bookings []models.BookedInterval
	Now      time.Time
	LeadTime time.Duration
}

// ComputeAvailableSlots returns the bookable slots for the date, ordered
// ascending by start time. A closed or fully booked day yields an empty
// list, not an error.
func (e *AvailabilityEngine) ComputeAvailableSlots(in AvailabilityInput) ([]models.TimeSlot, error) {
	def, err := e.Catalog.Get(in.ServiceType)
	if err != nil {
		return nil, err
	}

	day, err := ParseDateInZone(in.Date, in.Location)
	if err != nil {
		return nil, err
	}

	hours := hoursForService(def, in.Hours)
	if hours == nil {
		return nil, nil
	}
	open, err := parseClock(hours.Start)
	if err != nil {
		return nil, nil
	}
	closing, err := parseClock(hours.End)
	if err != nil || closing <= open {
		return nil, nil
	}

	duration := time.Duration(def.DurationMinutes) * time.Minute
	// Posted hours may open off-boundary (e.g. 09:10); candidates still land
	// on quarter-hour boundaries.
	opensAt := RoundUpToQuarter(clockOnDay(day, open))
	closesAt := clockOnDay(day, closing)

	// A slot must start late enough to be honored: now plus lead time,
	// rounded up to the next quarter hour.
	earliest := RoundUpToQuarter(in.Now.In(in.Location).Add(in.LeadTime))

	var slots []models.TimeSlot
	for start := opensAt; !start.Add(duration).After(closesAt); start = start.Add(SlotStep) {
		if start.Before(earliest) {
			continue
		}
		end := start.Add(duration)
		if overlapsAny(start, end, in.Bookings) {
			continue
		}
		slots = append(slots, models.TimeSlot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: def.DurationMinutes,
			Available:       true,
		})
	}
	return slots, nil
}

func overlapsAny(start, end time.Time, busy []models.BookedInterval) bool {
	for _, b := range busy {
		// Half-open intervals: [start,end) overlaps [b.Start,b.End) iff
		// start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
