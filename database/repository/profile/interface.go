package profileRepo

import (
	"context"

	"velora/models"
)

// ProfileRepository reads master profile documents. Profiles are written by
// the profile-editing surfaces, which are outside this service; reads here
// must tolerate whatever shape those surfaces have left behind.
type ProfileRepository interface {
	// GetAvailability returns the master's booking policy. Malformed
	// fields are normalized away, never surfaced as errors; only an I/O
	// failure reading the document returns one.
	GetAvailability(ctx context.Context, masterUID string) (*models.AvailabilityPolicy, error)

	// GetContact returns the notification-relevant slice of a profile.
	GetContact(ctx context.Context, uid string) (*models.MasterContact, error)

	// GetDisplayName is a best-effort name lookup used when composing
	// notification text.
	GetDisplayName(ctx context.Context, uid string) (string, error)
}
