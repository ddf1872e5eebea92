package models

// MasterContact carries the notification-relevant slice of a profile.
type MasterContact struct {
	UID           string
	DisplayName   string
	FCMToken      string
	BookingAlerts bool
}
