// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type settingDoc struct {
	Key      string `bson:"key"`
	Value    string `bson:"value"`
	Category string `bson:"category"`
}

const bookingCategory = "booking"

func (r *mongoSettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"category": bookingCategory})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	settings := make(map[string]string)
	for cursor.Next(ctx) {
		var doc settingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		settings[doc.Key] = doc.Value
	}
	return settings, cursor.Err()
}

func (r *mongoSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingDoc
	err := r.coll.FindOne(ctx, bson.M{"key": key, "category": bookingCategory}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (r *mongoSettingsRepo) SetMany(ctx context.Context, values map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	upsert := true
	writes := make([]mongo.WriteModel, 0, len(values))
	for key, value := range values {
		writes = append(writes, &mongo.ReplaceOneModel{
			Filter:      bson.M{"key": key, "category": bookingCategory},
			Replacement: settingDoc{Key: key, Value: value, Category: bookingCategory},
			Upsert:      &upsert,
		})
	}
	if len(writes) == 0 {
		return nil
	}
	_, err := r.coll.BulkWrite(ctx, writes)
	return err
}
