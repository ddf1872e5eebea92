//go:build integration

package reservationRepo

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"velora/models"
)

// Needs a replica-set Mongo (transactions refuse to start on a standalone):
//
//	MONGO_TEST_URI="mongodb://localhost:27017/?replicaSet=rs0" go test -tags integration ./database/...
func newIntegrationRepo(t *testing.T) (*MongoReservationRepo, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, readpref.Primary()))

	db := client.Database("velora_test")
	repo := &MongoReservationRepo{
		coll:   db.Collection("reservations"),
		guards: db.Collection("booking_guards"),
	}
	require.NoError(t, repo.EnsureIndexes(ctx))

	cleanup := func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
		cancel()
	}
	return repo, cleanup
}

// Concurrent transactions inserting distinct reservation documents share no
// write on their own; the per-master guard write is what forces them to
// conflict. This drives the real writer to verify exactly one commit wins.
func TestCreateIfSlotFreeConcurrentWriters(t *testing.T) {
	repo, cleanup := newIntegrationRepo(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	const n = 16
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.CreateIfSlotFree(ctx, models.ReservationDraft{
				ListingID: "listing-race",
				MasterUID: "master-race",
				ClientUID: "client",
				// Every window overlaps the contested first hour.
				Start: start.Add(time.Duration(i) * time.Minute),
				End:   start.Add(time.Duration(i)*time.Minute + time.Hour),
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error from concurrent create: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, conflicts)

	count, err := repo.coll.CountDocuments(ctx, bson.M{"master_uid": "master-race"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateIfSlotFreeBackToBack(t *testing.T) {
	repo, cleanup := newIntegrationRepo(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	_, err := repo.CreateIfSlotFree(ctx, models.ReservationDraft{
		ListingID: "listing-1",
		MasterUID: "master-adjacent",
		ClientUID: "client-a",
		Start:     start,
		End:       start.Add(time.Hour),
	})
	require.NoError(t, err)

	// End is exclusive: a reservation starting exactly at the previous end
	// is not an overlap.
	_, err = repo.CreateIfSlotFree(ctx, models.ReservationDraft{
		ListingID: "listing-1",
		MasterUID: "master-adjacent",
		ClientUID: "client-b",
		Start:     start.Add(time.Hour),
		End:       start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
}
