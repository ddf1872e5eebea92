package booking

import (
	"fmt"
	"time"

	"velora/models"
)

const (
	// Longest single appointment a client can reserve.
	maxReservationLength = 8 * time.Hour

	// Clock skew and network latency allowance for "start in the past".
	pastGraceSkew = 60 * time.Second
)

// ValidateWindow checks that [start, end) is a well-formed reservation
// interval that falls inside the master's working hours, if any are set.
// All violations come back as bad-request errors with specific messages.
func ValidateWindow(start, end, now time.Time, hours *models.WorkingHours) error {
	if !end.After(start) {
		return NewError(CodeBadRequest, "end time must be after start time")
	}
	if end.Sub(start) > maxReservationLength {
		return NewError(CodeBadRequest, fmt.Sprintf("duration exceeds the %v maximum", maxReservationLength))
	}
	if start.Before(now.Add(-pastGraceSkew)) {
		return NewError(CodeBadRequest, "start time is in the past")
	}

	if hours != nil {
		windowStart, windowEnd, err := hours.Minutes()
		if err != nil {
			// A broken working-hours record never blocks bookings.
			return nil
		}
		// Wall-clock minutes in the timestamp's own location, matching
		// what the client and master both read off their calendars.
		startMinute := start.Hour()*60 + start.Minute()
		if startMinute < windowStart || startMinute > windowEnd {
			return NewError(CodeBadRequest, fmt.Sprintf(
				"start time is outside working hours %s-%s", hours.Start, hours.End))
		}
	}

	return nil
}
