package models

import "time"

// Reservation statuses. Pending and confirmed occupy the slot; declined and
// cancelled free it for re-booking.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// ActiveStatuses returns the statuses that count toward the overlap check.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

// Reservation represents a claimed time slot for a master's service.
// The interval is [Start, End): End is exclusive, so a reservation ending at
// T and another starting at T do not collide.
type Reservation struct {
	ID          string    `bson:"id" json:"id"`
	ListingID   string    `bson:"listing_id" json:"listingId"`
	MasterUID   string    `bson:"master_uid" json:"masterUid"`
	ClientUID   string    `bson:"client_uid" json:"clientUid"`
	Start       time.Time `bson:"start" json:"start"`
	End         time.Time `bson:"end" json:"end"`
	Status      string    `bson:"status" json:"status"`
	ServiceKey  string    `bson:"service_key,omitempty" json:"serviceKey,omitempty"`
	ServiceName string    `bson:"service_name,omitempty" json:"serviceName,omitempty"`
	Note        string    `bson:"note,omitempty" json:"note,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price       float64   `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReservationDraft is the internal value object both request shapes reduce
// to at the handler boundary. The validator and the writer only ever see a
// draft, never the wire shapes.
type ReservationDraft struct {
	ListingID   string
	MasterUID   string
	ClientUID   string
	Start       time.Time
	End         time.Time
	ServiceKey  string
	ServiceName string
	Note        string
	Phone       string
	Price       float64
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
