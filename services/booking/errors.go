package booking

import (
	"errors"
	"fmt"
)

// Machine-readable error codes returned to callers.
const (
	CodeUnauthorized    = "unauthorized"
	CodeBadRequest      = "bad-request"
	CodeNotFound        = "not-found"
	CodeMasterMismatch  = "listing-master-mismatch"
	CodeBookingDisabled = "booking-disabled-by-master"
	CodeOffDay          = "booking-on-off-day"
	CodeSlotUnavailable = "slot-not-available"
	CodeInternal        = "internal"
)

// Error is a booking failure with a caller-facing code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a coded booking error.
func NewError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// CodeOf extracts the taxonomy code from err, defaulting to internal.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}
