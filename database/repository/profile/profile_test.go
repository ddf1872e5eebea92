package profileRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeAvailabilityDefaults(t *testing.T) {
	// A profile that never configured booking settings stays bookable.
	policy := normalizeAvailability(bson.M{"display_name": "Anna"})

	assert.True(t, policy.AllowBookings)
	assert.Empty(t, policy.OffDays)
	assert.Nil(t, policy.WorkingHours)
}

func TestNormalizeAvailabilityExplicitGate(t *testing.T) {
	policy := normalizeAvailability(bson.M{"allow_bookings": false})
	assert.False(t, policy.AllowBookings)

	// Legacy camelCase spelling is honored too.
	policy = normalizeAvailability(bson.M{"allowBookings": false})
	assert.False(t, policy.AllowBookings)
}

func TestNormalizeAvailabilityDropsMalformedOffDays(t *testing.T) {
	policy := normalizeAvailability(bson.M{
		"off_days": bson.A{"2025-06-01", "garbage", "06/02/2025", 42, nil, "2025-07-15"},
	})

	require.Len(t, policy.OffDays, 2)
	_, ok := policy.OffDays["2025-06-01"]
	assert.True(t, ok)
	_, ok = policy.OffDays["2025-07-15"]
	assert.True(t, ok)
}

func TestNormalizeAvailabilityWorkingHours(t *testing.T) {
	policy := normalizeAvailability(bson.M{
		"working_hours": bson.M{"start": "09:00", "end": "17:00"},
	})
	require.NotNil(t, policy.WorkingHours)
	assert.Equal(t, "09:00", policy.WorkingHours.Start)
	assert.Equal(t, "17:00", policy.WorkingHours.End)

	// Unparseable hours are dropped rather than enforced.
	policy = normalizeAvailability(bson.M{
		"working_hours": bson.M{"start": "morning", "end": "17:00"},
	})
	assert.Nil(t, policy.WorkingHours)
}
