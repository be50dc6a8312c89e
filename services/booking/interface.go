package booking

import (
	"context"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// BookingService is the orchestrating surface the HTTP handlers call. It
// fetches settings and existing bookings, runs the availability and pricing
// engines, and persists the results.
type BookingService interface {
	// GetAvailability computes the bookable slots for a service and date.
	// clientTimezone is echoed back for display; computation always runs in
	// the business timezone.
	GetAvailability(ctx context.Context, serviceType models.ServiceType, date, clientTimezone string) (*models.AvailabilityResult, error)

	// Quote prices a prospective booking, resolving travel distance when the
	// service requires an address and one was supplied.
	Quote(ctx context.Context, req models.QuoteRequest) (*models.PricingBreakdown, error)

	// CreateBooking validates the request against current availability,
	// prices it, persists it, and schedules a reminder.
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)

	// CancelBooking marks a booking cancelled and frees its slot.
	CancelBooking(ctx context.Context, id string, byStaff bool) error

	GetBooking(ctx context.Context, id string) (*models.Booking, error)

	// ListServices returns the service catalog in a stable order.
	ListServices() []models.ServiceDefinition
}

// ReminderScheduler enqueues the pre-appointment reminder for a new booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}
