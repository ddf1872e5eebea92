package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velora/models"
)

// CreateIfSlotFree runs the overlap check and the insert inside one Mongo
// transaction. Snapshot reads alone do not serialize two inserts that touch
// no common document, so the transaction first bumps a per-master guard
// document: concurrent writers for the same master collide on that shared
// write, the loser aborts with a transient error, and the driver retry
// re-runs it against a snapshot that already contains the winner's insert,
// where the overlap check returns ErrSlotTaken.
//
// The overlap predicate (existing.start < cand.end AND existing.end >
// cand.start) needs two range fields, so only the first half is pushed to
// the query; the second half runs here, still inside the transaction.
func (repo *MongoReservationRepo) CreateIfSlotFree(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		// The guard write goes first. The unique index on master_uid makes
		// even the first-ever booking for a master conflict instead of
		// upserting two guard documents side by side.
		if _, err := repo.guards.UpdateOne(sc,
			bson.M{"master_uid": draft.MasterUID},
			bson.M{"$inc": bson.M{"version": 1}},
			options.Update().SetUpsert(true),
		); err != nil {
			return nil, fmt.Errorf("slot guard update failed: %w", err)
		}

		filter := bson.M{
			"master_uid": draft.MasterUID,
			"status":     bson.M{"$in": models.ActiveStatuses()},
			"start":      bson.M{"$lt": draft.End},
		}
		cursor, err := repo.coll.Find(sc, filter)
		if err != nil {
			return nil, fmt.Errorf("overlap query failed: %w", err)
		}
		var existing []models.Reservation
		if err := cursor.All(sc, &existing); err != nil {
			return nil, fmt.Errorf("overlap decode failed: %w", err)
		}

		for _, r := range existing {
			if r.End.After(draft.Start) {
				return nil, ErrSlotTaken
			}
		}

		now := time.Now().UTC()
		created := &models.Reservation{
			ID:          uuid.New().String(),
			ListingID:   draft.ListingID,
			MasterUID:   draft.MasterUID,
			ClientUID:   draft.ClientUID,
			Start:       draft.Start.UTC(),
			End:         draft.End.UTC(),
			Status:      models.StatusPending,
			ServiceKey:  draft.ServiceKey,
			ServiceName: draft.ServiceName,
			Note:        draft.Note,
			Phone:       draft.Phone,
			Price:       draft.Price,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := repo.coll.InsertOne(sc, created); err != nil {
			return nil, fmt.Errorf("insert reservation failed: %w", err)
		}
		return created, nil
	}

	// WithTransaction retries transient write conflicts itself, so a loser
	// in the guard collision comes back around and sees ErrSlotTaken
	// instead of surfacing the conflict to the caller.
	out, err := sess.WithTransaction(ctx, txnFn)
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("reservation transaction failed: %w", err)
	}

	return out.(*models.Reservation), nil
}
