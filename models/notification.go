package models

import "time"

// Booking notification kinds.
const (
	NotifyBookingCreated = "booking_created"
	NotifyBookingStatus  = "booking_status"
)

// BookingNotifyPayload is the message enqueued after a reservation commits
// or changes status. Delivery is best-effort and detached from the request
// path.
type BookingNotifyPayload struct {
	Kind          string    `json:"kind"`
	ReservationID string    `json:"reservationId"`
	ListingID     string    `json:"listingId"`
	MasterUID     string    `json:"masterUid"`
	ClientUID     string    `json:"clientUid"`
	ServiceName   string    `json:"serviceName,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status,omitempty"`
}
