package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(0), at(60), at(0), at(60), true},
		{"partial overlap", at(0), at(60), at(30), at(90), true},
		{"contained", at(0), at(60), at(15), at(45), true},
		{"back to back, end exclusive", at(0), at(60), at(60), at(120), false},
		{"back to back reversed", at(60), at(120), at(0), at(60), false},
		{"disjoint", at(0), at(30), at(90), at(120), false},
		{"one minute overlap", at(0), at(61), at(60), at(120), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestAvailabilityPolicyIsOffDay(t *testing.T) {
	policy := &AvailabilityPolicy{
		AllowBookings: true,
		OffDays:       map[string]struct{}{"2025-06-01": {}},
	}

	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	assert.True(t, policy.IsOffDay(morning))
	assert.True(t, policy.IsOffDay(night))
	assert.False(t, policy.IsOffDay(nextDay))
	assert.False(t, PermissiveAvailability().IsOffDay(morning))
}

func TestWorkingHoursMinutes(t *testing.T) {
	wh := WorkingHours{Start: "09:00", End: "17:30"}
	start, end, err := wh.Minutes()
	assert.NoError(t, err)
	assert.Equal(t, 540, start)
	assert.Equal(t, 1050, end)

	_, _, err = WorkingHours{Start: "9am", End: "17:00"}.Minutes()
	assert.Error(t, err)

	_, _, err = WorkingHours{Start: "25:00", End: "17:00"}.Minutes()
	assert.Error(t, err)
}
