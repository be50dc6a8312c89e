package booking

import (
	"testing"
	"time"
)

func TestRoundUpToQuarter(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"rounds up mid-quarter", time.Date(2025, 6, 30, 10, 7, 0, 0, loc), time.Date(2025, 6, 30, 10, 15, 0, 0, loc)},
		{"boundary unchanged", time.Date(2025, 6, 30, 10, 15, 0, 0, loc), time.Date(2025, 6, 30, 10, 15, 0, 0, loc)},
		{"just past boundary", time.Date(2025, 6, 30, 10, 16, 0, 0, loc), time.Date(2025, 6, 30, 10, 30, 0, 0, loc)},
		{"top of hour unchanged", time.Date(2025, 6, 30, 10, 0, 0, 0, loc), time.Date(2025, 6, 30, 10, 0, 0, 0, loc)},
		{"seconds push past boundary", time.Date(2025, 6, 30, 10, 45, 30, 0, loc), time.Date(2025, 6, 30, 11, 0, 0, 0, loc)},
		{"rolls into next hour", time.Date(2025, 6, 30, 10, 50, 0, 0, loc), time.Date(2025, 6, 30, 11, 0, 0, 0, loc)},
	}
	for _, tc := range cases {
		got := RoundUpToQuarter(tc.in)
		if !got.Equal(tc.want) {
			t.Fatalf("%s: RoundUpToQuarter(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestRoundUpToQuarterIdempotent(t *testing.T) {
	in := time.Date(2025, 6, 30, 10, 7, 0, 0, time.UTC)
	once := RoundUpToQuarter(in)
	twice := RoundUpToQuarter(once)
	if !once.Equal(twice) {
		t.Fatalf("rounding a rounded time moved it: %v -> %v", once, twice)
	}
}

func TestParseDateInZoneWeekday(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2025-06-29 is a Sunday in Chicago. Parsed as UTC midnight it would
	// still be Sunday, but the local instant must be Chicago midnight.
	day, err := ParseDateInZone("2025-06-29", loc)
	if err != nil {
		t.Fatalf("ParseDateInZone: %v", err)
	}
	if day.Weekday() != time.Sunday {
		t.Fatalf("weekday = %v, want Sunday", day.Weekday())
	}
	if day.Hour() != 0 || day.Location() != loc {
		t.Fatalf("expected midnight in %v, got %v", loc, day)
	}
}

func TestParseDateInZoneRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"06/29/2025", "2025-6-9", "tomorrow", ""} {
		if _, err := ParseDateInZone(bad, time.UTC); err == nil {
			t.Fatalf("ParseDateInZone(%q) accepted malformed input", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("09:30")
	if err != nil {
		t.Fatalf("parseClock: %v", err)
	}
	if got != 9*60+30 {
		t.Fatalf("parseClock(09:30) = %d, want %d", got, 9*60+30)
	}

	for _, bad := range []string{"9", "25:00", "09:61", "ab:cd", ""} {
		if _, err := parseClock(bad); err == nil {
			t.Fatalf("parseClock(%q) accepted malformed input", bad)
		}
	}
}
