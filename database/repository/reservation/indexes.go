package reservationRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the overlap query and the lookups rely
// on. The compound (master_uid, status, start) index backs the single range
// bound the overlap query pushes to the server.
func (repo *MongoReservationRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "master_uid", Value: 1},
				{Key: "status", Value: 1},
				{Key: "start", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "client_uid", Value: 1}, {Key: "start", Value: -1}},
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}

	// One guard document per master. Without the unique index two
	// first-ever bookings for the same master could upsert separate guard
	// documents and never conflict.
	guardIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "master_uid", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.guards.Indexes().CreateOne(ctx, guardIndex); err != nil {
		return fmt.Errorf("failed to create slot guard index: %w", err)
	}
	return nil
}
