package models

// DayHours is the posted open/close window for one weekday, expressed as
// "HH:MM" wall-clock times in the business timezone. A nil *DayHours means
// the business is closed that day.
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekdayNames maps time.Weekday ordinals (0=Sunday..6=Saturday) to the
// lowercase names used in the business-settings keys
// (business_hours_<day>_start / business_hours_<day>_end).
var WeekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}
