package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"velora/models"
)

func TestResolveReturnsStoredPolicy(t *testing.T) {
	profiles := new(MockProfileRepo)
	resolver := &AvailabilityResolver{Profiles: profiles}

	stored := &models.AvailabilityPolicy{
		AllowBookings: false,
		OffDays:       map[string]struct{}{"2025-06-01": {}},
	}
	profiles.On("GetAvailability", mock.Anything, "master-1").Return(stored, nil)

	policy := resolver.Resolve(context.Background(), "master-1")
	assert.False(t, policy.AllowBookings)
	assert.Len(t, policy.OffDays, 1)
}

func TestResolveFailsOpenOnReadError(t *testing.T) {
	profiles := new(MockProfileRepo)
	resolver := &AvailabilityResolver{Profiles: profiles}

	profiles.On("GetAvailability", mock.Anything, "master-1").
		Return(nil, errors.New("connection reset"))

	policy := resolver.Resolve(context.Background(), "master-1")
	assert.True(t, policy.AllowBookings)
	assert.Empty(t, policy.OffDays)
	assert.Nil(t, policy.WorkingHours)
}
