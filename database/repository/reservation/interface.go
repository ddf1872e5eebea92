package reservationRepo

import (
	"context"
	"errors"
	"time"

	"velora/models"
)

// Sentinel errors surfaced by the repository. Callers map these onto the
// client-facing error taxonomy.
var (
	ErrSlotTaken = errors.New("slot already taken")
	ErrNotFound  = errors.New("reservation not found")
)

// ReservationRepository persists booking reservations.
type ReservationRepository interface {
	// CreateIfSlotFree atomically checks for overlapping active
	// reservations for the draft's master and, if none exist, inserts a
	// new pending reservation. Returns ErrSlotTaken on overlap.
	CreateIfSlotFree(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)

	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListByMaster(ctx context.Context, masterUID string, from, to time.Time) ([]models.Reservation, error)
	ListByClient(ctx context.Context, clientUID string) ([]models.Reservation, error)

	// UpdateStatusByMaster transitions a reservation the master owns from
	// one of the given statuses. Returns ErrNotFound when no document
	// matches (wrong id, wrong owner, or status already moved on).
	UpdateStatusByMaster(ctx context.Context, id, masterUID string, from []string, to string) (*models.Reservation, error)

	// CancelByClient lets the booking client cancel a pending or
	// confirmed reservation.
	CancelByClient(ctx context.Context, id, clientUID string) (*models.Reservation, error)

	EnsureIndexes(ctx context.Context) error
}
