package models

import "time"

// TimeSlot is a candidate appointment window for a given service and date.
// Slots are computed fresh per request and never persisted.
type TimeSlot struct {
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

// BookedInterval is an already-committed time range used only to exclude
// overlapping candidate slots.
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimezoneInfo echoes the zones a slot computation was performed in.
type TimezoneInfo struct {
	BusinessTimezone string `json:"businessTimezone"`
	ClientTimezone   string `json:"clientTimezone,omitempty"`
}

// AvailabilityResult is the availability endpoint response body.
type AvailabilityResult struct {
	Date          string             `json:"date"`
	ServiceType   ServiceType        `json:"serviceType"`
	Slots         []TimeSlot         `json:"availableSlots"`
	BusinessHours *DayHours          `json:"businessHours,omitempty"`
	ServiceInfo   *ServiceDefinition `json:"serviceInfo,omitempty"`
	Message       string             `json:"message,omitempty"`
	TimezoneInfo  TimezoneInfo       `json:"timezoneInfo"`
}
