package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkingHours is a daily time-of-day window outside of which a master
// accepts no bookings. Bounds are "HH:MM" strings and inclusive.
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Minutes converts both bounds to minutes since midnight.
func (wh WorkingHours) Minutes() (int, int, error) {
	start, err := parseClock(wh.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid working hours start %q: %w", wh.Start, err)
	}
	end, err := parseClock(wh.End)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid working hours end %q: %w", wh.End, err)
	}
	return start, end, nil
}

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minute")
	}
	return h*60 + m, nil
}

// AvailabilityPolicy is the booking gate read from a master's profile.
type AvailabilityPolicy struct {
	AllowBookings bool
	OffDays       map[string]struct{}
	WorkingHours  *WorkingHours
}

// PermissiveAvailability is the fail-open policy: bookings allowed, no off
// days, no working-hours window.
func PermissiveAvailability() *AvailabilityPolicy {
	return &AvailabilityPolicy{AllowBookings: true}
}

// IsOffDay reports whether t falls on a blocked calendar date. The date is
// taken from t's own location, matching what the requester sees on a wall
// clock.
func (p *AvailabilityPolicy) IsOffDay(t time.Time) bool {
	if len(p.OffDays) == 0 {
		return false
	}
	_, ok := p.OffDays[t.Format("2006-01-02")]
	return ok
}
