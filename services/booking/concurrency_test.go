package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reservationRepo "velora/database/repository/reservation"
	"velora/models"
)

// memReservationRepo reproduces the store's contract for tests. The mutex
// stands in for the per-master guard write that serializes concurrent
// booking transactions in Mongo: in both cases check+insert for one master
// run one at a time, so at most one overlapping writer commits. The real
// writer is exercised under the integration build tag in
// database/repository/reservation.
type memReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
}

func (r *memReservationRepo) CreateIfSlotFree(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.MasterUID != draft.MasterUID {
			continue
		}
		if existing.Status != models.StatusPending && existing.Status != models.StatusConfirmed {
			continue
		}
		if models.Overlaps(existing.Start, existing.End, draft.Start, draft.End) {
			return nil, reservationRepo.ErrSlotTaken
		}
	}

	now := time.Now().UTC()
	res := models.Reservation{
		ID:        draft.MasterUID + draft.Start.Format(time.RFC3339Nano),
		ListingID: draft.ListingID,
		MasterUID: draft.MasterUID,
		ClientUID: draft.ClientUID,
		Start:     draft.Start,
		End:       draft.End,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.reservations = append(r.reservations, res)
	return &res, nil
}

func (r *memReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			return &r.reservations[i], nil
		}
	}
	return nil, reservationRepo.ErrNotFound
}

func (r *memReservationRepo) ListByMaster(ctx context.Context, masterUID string, from, to time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (r *memReservationRepo) ListByClient(ctx context.Context, clientUID string) ([]models.Reservation, error) {
	return nil, nil
}

func (r *memReservationRepo) UpdateStatusByMaster(ctx context.Context, id, masterUID string, from []string, to string) (*models.Reservation, error) {
	return nil, reservationRepo.ErrNotFound
}

func (r *memReservationRepo) CancelByClient(ctx context.Context, id, clientUID string) (*models.Reservation, error) {
	return nil, reservationRepo.ErrNotFound
}

func (r *memReservationRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newConcurrencyService(store *memReservationRepo) (*DefaultBookingService, *MockProfileRepo, *MockListingRepo) {
	profiles := new(MockProfileRepo)
	listings := new(MockListingRepo)
	disp := new(MockDispatcher)
	disp.On("Dispatch", mock.Anything).Return()
	return &DefaultBookingService{
		Reservations: store,
		Listings:     listings,
		Availability: &AvailabilityResolver{Profiles: profiles},
		Notifier:     disp,
		Now:          func() time.Time { return testNow },
	}, profiles, listings
}

func TestConcurrentOverlappingRequestsExactlyOneWins(t *testing.T) {
	store := &memReservationRepo{}
	svc, profiles, listings := newConcurrencyService(store)

	listings.On("GetRef", mock.Anything, "listing-1").
		Return(&models.ListingRef{ID: "listing-1", MasterUID: "master-1"}, nil)
	profiles.On("GetAvailability", mock.Anything, "master-1").
		Return(models.PermissiveAvailability(), nil)

	const n = 25
	start := testNow.Add(48 * time.Hour)

	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			draft := models.ReservationDraft{
				ListingID: "listing-1",
				ClientUID: "client",
				// All windows overlap the contested noon hour.
				Start: start.Add(time.Duration(i) * time.Minute),
				End:   start.Add(time.Duration(i)*time.Minute + time.Hour),
			}
			_, err := svc.CreateReservation(context.Background(), draft)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.Equal(t, CodeSlotUnavailable, CodeOf(err))
		conflicts++
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, conflicts)
	assert.Len(t, store.reservations, 1)
}

// droppingDispatcher models a broken notification channel: every dispatch
// is silently lost.
type droppingDispatcher struct{ dropped int }

func (d *droppingDispatcher) Dispatch(payload models.BookingNotifyPayload) { d.dropped++ }

func TestReservationSurvivesNotificationChannelFailure(t *testing.T) {
	store := &memReservationRepo{}
	profiles := new(MockProfileRepo)
	listings := new(MockListingRepo)
	disp := &droppingDispatcher{}
	svc := &DefaultBookingService{
		Reservations: store,
		Listings:     listings,
		Availability: &AvailabilityResolver{Profiles: profiles},
		Notifier:     disp,
		Now:          func() time.Time { return testNow },
	}

	listings.On("GetRef", mock.Anything, "listing-1").
		Return(&models.ListingRef{ID: "listing-1", MasterUID: "master-1"}, nil)
	profiles.On("GetAvailability", mock.Anything, "master-1").
		Return(models.PermissiveAvailability(), nil)

	start := testNow.Add(48 * time.Hour)
	created, err := svc.CreateReservation(context.Background(), models.ReservationDraft{
		ListingID: "listing-1",
		ClientUID: "client-a",
		Start:     start,
		End:       start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, disp.dropped)

	// The committed reservation is retrievable even though the
	// notification went nowhere.
	fetched, err := svc.GetReservation(context.Background(), created.ID, "client-a")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestBackToBackReservationsBothSucceed(t *testing.T) {
	store := &memReservationRepo{}
	svc, profiles, listings := newConcurrencyService(store)

	listings.On("GetRef", mock.Anything, "listing-1").
		Return(&models.ListingRef{ID: "listing-1", MasterUID: "master-1"}, nil)
	profiles.On("GetAvailability", mock.Anything, "master-1").
		Return(models.PermissiveAvailability(), nil)

	start := testNow.Add(48 * time.Hour)
	first := models.ReservationDraft{
		ListingID: "listing-1",
		ClientUID: "client-a",
		Start:     start,
		End:       start.Add(time.Hour),
	}
	// Second starts exactly where the first ends: no conflict.
	second := models.ReservationDraft{
		ListingID: "listing-1",
		ClientUID: "client-b",
		Start:     start.Add(time.Hour),
		End:       start.Add(2 * time.Hour),
	}

	_, err := svc.CreateReservation(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.CreateReservation(context.Background(), second)
	require.NoError(t, err)
	assert.Len(t, store.reservations, 2)
}
