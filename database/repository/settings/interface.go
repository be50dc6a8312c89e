// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KennyLightfoot/hmnp-site-sub021/database"
)

// SettingsRepository exposes the key-value business settings the booking
// engines consume (business hours, lead time, blackout dates, timezone).
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	SetMany(ctx context.Context, values map[string]string) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSettingsRepo{
		coll: db.Collection("business_settings"),
	}
}
