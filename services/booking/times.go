package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotStep is the candidate-slot granularity.
const SlotStep = 15 * time.Minute

// RoundUpToQuarter rounds t up to the next quarter-hour boundary. Times
// already on a boundary are returned unchanged.
func RoundUpToQuarter(t time.Time) time.Time {
	rounded := t.Truncate(time.Minute)
	if rounded.Before(t) {
		rounded = rounded.Add(time.Minute)
	}
	if rem := rounded.Minute() % 15; rem != 0 {
		rounded = rounded.Add(time.Duration(15-rem) * time.Minute)
	}
	return rounded
}

// ParseDateInZone interprets a bare "YYYY-MM-DD" string as midnight in the
// given zone. Weekday resolution must go through this; parsing a bare date
// as UTC midnight shifts the weekday in zones west of Greenwich.
func ParseDateInZone(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: date, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

// parseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	return hour*60 + minute, nil
}

// clockOnDay places a minutes-from-midnight offset onto a calendar day,
// constructing the wall-clock time in the day's zone (DST-safe, unlike
// adding a duration to midnight).
func clockOnDay(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}
