package booking

import (
	"context"
	"errors"

	reservationRepo "velora/database/repository/reservation"
	"velora/models"
)

// ConfirmReservation moves a pending reservation to confirmed. Only the
// master the reservation belongs to may confirm, and only from pending.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, id, masterUID string) (*models.Reservation, error) {
	return s.transitionByMaster(ctx, id, masterUID, models.StatusConfirmed)
}

// DeclineReservation moves a pending reservation to declined, freeing the
// slot for other clients.
func (s *DefaultBookingService) DeclineReservation(ctx context.Context, id, masterUID string) (*models.Reservation, error) {
	return s.transitionByMaster(ctx, id, masterUID, models.StatusDeclined)
}

// CancelReservation lets the booking client cancel while the reservation
// is still active.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, id, clientUID string) (*models.Reservation, error) {
	res, err := s.Reservations.CancelByClient(ctx, id, clientUID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, NewError(CodeNotFound, "no cancellable reservation found")
		}
		return nil, NewError(CodeInternal, "failed to cancel reservation")
	}
	s.notifyStatus(res)
	return res, nil
}

func (s *DefaultBookingService) transitionByMaster(ctx context.Context, id, masterUID, to string) (*models.Reservation, error) {
	res, err := s.Reservations.UpdateStatusByMaster(ctx, id, masterUID, []string{models.StatusPending}, to)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, NewError(CodeNotFound, "no pending reservation found")
		}
		return nil, NewError(CodeInternal, "failed to update reservation")
	}
	s.notifyStatus(res)
	return res, nil
}

func (s *DefaultBookingService) notifyStatus(res *models.Reservation) {
	s.Notifier.Dispatch(models.BookingNotifyPayload{
		Kind:          models.NotifyBookingStatus,
		ReservationID: res.ID,
		ListingID:     res.ListingID,
		MasterUID:     res.MasterUID,
		ClientUID:     res.ClientUID,
		ServiceName:   res.ServiceName,
		Start:         res.Start,
		End:           res.End,
		Status:        res.Status,
	})
}
