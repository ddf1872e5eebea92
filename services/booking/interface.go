package booking

import (
	"context"
	"time"

	"velora/models"
)

// BookingService turns validated reservation drafts into durable booking
// records and manages their lifecycle.
type BookingService interface {
	// CreateReservation runs the full policy chain and the transactional
	// slot check, then schedules the master notification.
	CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)

	GetReservation(ctx context.Context, id, requesterUID string) (*models.Reservation, error)
	ListForMaster(ctx context.Context, masterUID string, from, to time.Time) ([]models.Reservation, error)
	ListForClient(ctx context.Context, clientUID string) ([]models.Reservation, error)

	ConfirmReservation(ctx context.Context, id, masterUID string) (*models.Reservation, error)
	DeclineReservation(ctx context.Context, id, masterUID string) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id, clientUID string) (*models.Reservation, error)
}
