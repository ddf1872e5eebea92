package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	listingRepo "velora/database/repository/listing"
	reservationRepo "velora/database/repository/reservation"
	"velora/models"
	"velora/services/notification"
	"velora/utils"
)

// DefaultBookingService is the production booking orchestrator.
type DefaultBookingService struct {
	Reservations reservationRepo.ReservationRepository
	Listings     listingRepo.ListingRepository
	Availability *AvailabilityResolver
	Notifier     notification.Dispatcher

	// Now is the clock used for past-start validation. Defaults to
	// time.Now when unset.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateReservation applies the checks in a fixed order. Later checks
// assume earlier ones passed, and the ordering decides which error a
// caller sees first:
//
//  1. resolve the listing and pin down the master
//  2. availability gate (bookings enabled, not an off day)
//  3. time window (well-formed, inside working hours)
//  4. transactional overlap check + insert
//  5. fire-and-forget master notification
func (s *DefaultBookingService) CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	logger := utils.GetLogger()

	ref, err := s.Listings.GetRef(ctx, draft.ListingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, NewError(CodeNotFound, "listing does not exist")
		}
		logger.Error("listing lookup failed", zap.String("listingId", draft.ListingID), zap.Error(err))
		return nil, NewError(CodeInternal, "failed to resolve listing")
	}
	if draft.MasterUID != "" && draft.MasterUID != ref.MasterUID {
		return nil, NewError(CodeMasterMismatch, "listing belongs to a different master")
	}
	draft.MasterUID = ref.MasterUID
	if draft.ServiceName == "" {
		draft.ServiceName = ref.ServiceName
	}

	policy := s.Availability.Resolve(ctx, draft.MasterUID)
	if !policy.AllowBookings {
		return nil, NewError(CodeBookingDisabled, "master is not accepting bookings")
	}
	if policy.IsOffDay(draft.Start) {
		return nil, NewError(CodeOffDay, "master does not accept bookings on this date")
	}

	if err := ValidateWindow(draft.Start, draft.End, s.now(), policy.WorkingHours); err != nil {
		return nil, err
	}

	res, err := s.Reservations.CreateIfSlotFree(ctx, draft)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, NewError(CodeSlotUnavailable, "the requested slot is already taken")
		}
		logger.Error("reservation write failed",
			zap.String("masterUid", draft.MasterUID), zap.Error(err))
		return nil, NewError(CodeInternal, "failed to create reservation")
	}

	// The response is sealed at this point; notification delivery can
	// neither delay nor undo it.
	s.Notifier.Dispatch(models.BookingNotifyPayload{
		Kind:          models.NotifyBookingCreated,
		ReservationID: res.ID,
		ListingID:     res.ListingID,
		MasterUID:     res.MasterUID,
		ClientUID:     res.ClientUID,
		ServiceName:   res.ServiceName,
		Start:         res.Start,
		End:           res.End,
	})

	return res, nil
}

func (s *DefaultBookingService) GetReservation(ctx context.Context, id, requesterUID string) (*models.Reservation, error) {
	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, NewError(CodeNotFound, "reservation does not exist")
		}
		return nil, NewError(CodeInternal, "failed to fetch reservation")
	}
	// Only the two parties may read a reservation.
	if res.MasterUID != requesterUID && res.ClientUID != requesterUID {
		return nil, NewError(CodeNotFound, "reservation does not exist")
	}
	return res, nil
}

func (s *DefaultBookingService) ListForMaster(ctx context.Context, masterUID string, from, to time.Time) ([]models.Reservation, error) {
	out, err := s.Reservations.ListByMaster(ctx, masterUID, from, to)
	if err != nil {
		return nil, NewError(CodeInternal, "failed to list reservations")
	}
	return out, nil
}

func (s *DefaultBookingService) ListForClient(ctx context.Context, clientUID string) ([]models.Reservation, error) {
	out, err := s.Reservations.ListByClient(ctx, clientUID)
	if err != nil {
		return nil, NewError(CodeInternal, "failed to list reservations")
	}
	return out, nil
}
