// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KennyLightfoot/hmnp-site-sub021/database"
	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// BookingRepository persists confirmed appointments and serves the
// existing-bookings ranges the availability engine excludes.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetForRange returns active bookings whose scheduled time falls in
	// [from, to), skipping cancelled and no-show statuses.
	GetForRange(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkReminderSent(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
