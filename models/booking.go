package models

import "time"

// Booking statuses. Cancelled and no-show bookings do not block slots.
const (
	BookingConfirmed         = "CONFIRMED"
	BookingCompleted         = "COMPLETED"
	BookingCancelledByClient = "CANCELLED_BY_CLIENT"
	BookingCancelledByStaff  = "CANCELLED_BY_STAFF"
	BookingNoShow            = "NO_SHOW"
)

// InactiveBookingStatuses lists the statuses excluded from availability
// computations.
var InactiveBookingStatuses = []string{
	BookingCancelledByClient,
	BookingCancelledByStaff,
	BookingNoShow,
}

// Booking is a confirmed appointment record.
type Booking struct {
	ID            string      `bson:"id" json:"id"`
	ServiceType   ServiceType `bson:"serviceType" json:"serviceType"`
	ScheduledAt   time.Time   `bson:"scheduledAt" json:"scheduledAt"`
	EndAt         time.Time   `bson:"endAt" json:"endAt"`
	Address       string      `bson:"address,omitempty" json:"address,omitempty"`
	DocumentCount int         `bson:"documentCount" json:"documentCount"`
	SignerCount   int         `bson:"signerCount" json:"signerCount"`
	CustomerName  string      `bson:"customerName" json:"customerName"`
	CustomerEmail string      `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string      `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	TotalPrice    float64     `bson:"totalPrice" json:"totalPrice"`
	Status        string      `bson:"status" json:"status"`
	ReminderSent  bool        `bson:"reminderSent" json:"reminderSent"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the booking-creation endpoint request body.
type BookingRequest struct {
	ServiceType       ServiceType `json:"serviceType" binding:"required"`
	ScheduledDateTime time.Time   `json:"scheduledDateTime" binding:"required"`
	Address           string      `json:"address,omitempty"`
	DocumentCount     int         `json:"documentCount"`
	SignerCount       int         `json:"signerCount"`
	CustomerName      string      `json:"customerName" binding:"required"`
	CustomerEmail     string      `json:"customerEmail" binding:"required"`
	CustomerPhone     string      `json:"customerPhone,omitempty"`
}
