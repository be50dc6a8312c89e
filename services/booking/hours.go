package booking

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// Settings keys the booking engines read.
const (
	SettingBusinessTimezone = "business_timezone"
	SettingLeadTimeHours    = "minimum_lead_time_hours"
	SettingBlackoutDates    = "blackout_dates"
	SettingTravelFeeEnabled = "travel_fee_enabled"
)

// defaultWeekHours apply when the settings store has no posted hours for a
// weekday. Weekends run limited hours.
var defaultWeekHours = map[string]models.DayHours{
	"monday":    {Start: "09:00", End: "17:00"},
	"tuesday":   {Start: "09:00", End: "17:00"},
	"wednesday": {Start: "09:00", End: "17:00"},
	"thursday":  {Start: "09:00", End: "17:00"},
	"friday":    {Start: "09:00", End: "17:00"},
	"saturday":  {Start: "10:00", End: "15:00"},
	"sunday":    {Start: "10:00", End: "15:00"},
}

// HoursForDay resolves the posted hours for a weekday from the business
// settings (business_hours_<day>_start/end), falling back to the defaults
// when the keys are absent. Malformed or inverted values mean closed (nil);
// that is a normal state, not an error.
func HoursForDay(weekday time.Weekday, settings map[string]string) *models.DayHours {
	name := models.WeekdayNames[weekday]
	start := settings["business_hours_"+name+"_start"]
	end := settings["business_hours_"+name+"_end"]

	if start == "" || end == "" {
		if hours, ok := defaultWeekHours[name]; ok {
			return validHours(hours)
		}
		return nil
	}
	return validHours(models.DayHours{Start: start, End: end})
}

func validHours(hours models.DayHours) *models.DayHours {
	open, err := parseClock(hours.Start)
	if err != nil {
		return nil
	}
	closing, err := parseClock(hours.End)
	if err != nil || closing <= open {
		return nil
	}
	return &hours
}

// hoursForService applies a service's hours override (extended-hours and RON
// keep their own schedule) on top of the posted day hours.
func hoursForService(def models.ServiceDefinition, day *models.DayHours) *models.DayHours {
	if def.HoursOverride != nil {
		return validHours(models.DayHours{Start: def.HoursOverride.Start, End: def.HoursOverride.End})
	}
	return day
}

// BlackoutDates parses the blackout_dates setting, a JSON array of
// "YYYY-MM-DD" strings. Malformed JSON means no blackouts.
func BlackoutDates(settings map[string]string) map[string]bool {
	raw := settings[SettingBlackoutDates]
	if raw == "" {
		return nil
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil
	}
	blackouts := make(map[string]bool, len(dates))
	for _, d := range dates {
		blackouts[d] = true
	}
	return blackouts
}

// LeadTime reads the minimum notice between "now" and the earliest bookable
// slot. Defaults to two hours.
func LeadTime(settings map[string]string) time.Duration {
	if raw := settings[SettingLeadTimeHours]; raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours >= 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 2 * time.Hour
}

// TravelFeeEnabled reads the administrative travel-fee switch. Defaults on.
func TravelFeeEnabled(settings map[string]string) bool {
	return settings[SettingTravelFeeEnabled] != "false"
}
