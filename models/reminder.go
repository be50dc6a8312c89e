package models

// ReminderPayload is the asynq task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"` // RFC3339
	Title     string `json:"title"`
	Body      string `json:"body"`
}
