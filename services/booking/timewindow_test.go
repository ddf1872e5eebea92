package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora/models"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, CodeOf(err))
}

func TestValidateWindowDurationBounds(t *testing.T) {
	start := testNow.Add(24 * time.Hour)

	// Zero and negative durations collapse into end <= start.
	assertCode(t, ValidateWindow(start, start, testNow, nil), CodeBadRequest)
	assertCode(t, ValidateWindow(start, start.Add(-30*time.Minute), testNow, nil), CodeBadRequest)

	// Exactly eight hours is the inclusive maximum.
	assert.NoError(t, ValidateWindow(start, start.Add(480*time.Minute), testNow, nil))
	assertCode(t, ValidateWindow(start, start.Add(481*time.Minute), testNow, nil), CodeBadRequest)
}

func TestValidateWindowPastStartGraceSkew(t *testing.T) {
	end := func(s time.Time) time.Time { return s.Add(time.Hour) }

	// 30 seconds in the past is absorbed by the skew allowance.
	s := testNow.Add(-30 * time.Second)
	assert.NoError(t, ValidateWindow(s, end(s), testNow, nil))

	// Exactly at the grace bound still passes.
	s = testNow.Add(-60 * time.Second)
	assert.NoError(t, ValidateWindow(s, end(s), testNow, nil))

	s = testNow.Add(-120 * time.Second)
	assertCode(t, ValidateWindow(s, end(s), testNow, nil), CodeBadRequest)
}

func TestValidateWindowWorkingHours(t *testing.T) {
	hours := &models.WorkingHours{Start: "09:00", End: "17:00"}
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	// Both window bounds are inclusive.
	assert.NoError(t, ValidateWindow(at(9, 0), at(10, 0), testNow, hours))
	assert.NoError(t, ValidateWindow(at(17, 0), at(18, 0), testNow, hours))

	assertCode(t, ValidateWindow(at(8, 59), at(10, 0), testNow, hours), CodeBadRequest)
	assertCode(t, ValidateWindow(at(17, 1), at(18, 0), testNow, hours), CodeBadRequest)
}

func TestValidateWindowBrokenWorkingHoursNeverBlock(t *testing.T) {
	hours := &models.WorkingHours{Start: "morning", End: "evening"}
	start := testNow.Add(24 * time.Hour)
	assert.NoError(t, ValidateWindow(start, start.Add(time.Hour), testNow, hours))
}
