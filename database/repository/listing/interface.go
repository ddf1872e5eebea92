package listingRepo

import (
	"context"
	"errors"

	"velora/models"
)

// ErrNotFound is returned when the referenced listing does not exist.
var ErrNotFound = errors.New("listing not found")

// ListingRepository reads service listing documents.
type ListingRepository interface {
	// GetRef resolves a listing to its normalized ownership reference.
	GetRef(ctx context.Context, listingID string) (*models.ListingRef, error)
}
