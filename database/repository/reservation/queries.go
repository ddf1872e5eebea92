package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velora/models"
)

func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &res, nil
}

func (repo *MongoReservationRepo) ListByMaster(ctx context.Context, masterUID string, from, to time.Time) ([]models.Reservation, error) {
	filter := bson.M{"master_uid": masterUID}
	if !from.IsZero() || !to.IsZero() {
		window := bson.M{}
		if !from.IsZero() {
			window["$gte"] = from
		}
		if !to.IsZero() {
			window["$lt"] = to
		}
		filter["start"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations for master %s: %w", masterUID, err)
	}
	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

func (repo *MongoReservationRepo) ListByClient(ctx context.Context, clientUID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"client_uid": clientUID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations for client %s: %w", clientUID, err)
	}
	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

func (repo *MongoReservationRepo) UpdateStatusByMaster(ctx context.Context, id, masterUID string, from []string, to string) (*models.Reservation, error) {
	return repo.transition(ctx, bson.M{
		"id":         id,
		"master_uid": masterUID,
		"status":     bson.M{"$in": from},
	}, to)
}

func (repo *MongoReservationRepo) CancelByClient(ctx context.Context, id, clientUID string) (*models.Reservation, error) {
	return repo.transition(ctx, bson.M{
		"id":         id,
		"client_uid": clientUID,
		"status":     bson.M{"$in": models.ActiveStatuses()},
	}, models.StatusCancelled)
}

// transition applies a guarded status update and returns the updated
// document. The status guard lives in the filter so a stale transition
// matches nothing instead of clobbering a newer state.
func (repo *MongoReservationRepo) transition(ctx context.Context, filter bson.M, to string) (*models.Reservation, error) {
	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating reservation status: %w", err)
	}
	return &res, nil
}
