package notification

import (
	"context"

	"velora/models"
)

// Dispatcher hands a booking notification off for background delivery.
// Dispatch never returns an error and never blocks the caller on delivery:
// the reservation's fate is already sealed by the time it is called.
type Dispatcher interface {
	Dispatch(payload models.BookingNotifyPayload)
}

// Service performs the actual delivery. It runs in the background worker,
// not on the request path.
type Service interface {
	DeliverBookingCreated(ctx context.Context, payload models.BookingNotifyPayload) error
	DeliverStatusChange(ctx context.Context, payload models.BookingNotifyPayload) error
}
