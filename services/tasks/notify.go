package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"velora/models"
)

const TypeBookingNotify = "booking:notify"

// NewBookingNotifyTask wraps a booking notification payload in an asynq
// task for the background worker.
func NewBookingNotifyTask(payload models.BookingNotifyPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
