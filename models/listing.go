package models

// ListingRef is the normalized ownership view of a listing document.
// Legacy listing records name their owner under several different fields;
// normalization happens once, right after the read, so nothing downstream
// has to know about the fan-out.
type ListingRef struct {
	ID          string
	MasterUID   string
	ServiceName string
}
