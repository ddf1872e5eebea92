package notification

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"velora/models"
	"velora/services/tasks"
	"velora/utils"
)

// AsynqDispatcher enqueues booking notifications onto the task queue.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

// Dispatch enqueues the payload. Enqueue failures are logged and dropped;
// a notification is never worth failing a committed reservation over.
func (d *AsynqDispatcher) Dispatch(payload models.BookingNotifyPayload) {
	logger := utils.GetLogger()

	task, err := tasks.NewBookingNotifyTask(payload)
	if err != nil {
		logger.Error("failed to build booking notify task",
			zap.String("reservationId", payload.ReservationID), zap.Error(err))
		return
	}
	if _, err := d.Client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		logger.Error("failed to enqueue booking notification",
			zap.String("reservationId", payload.ReservationID), zap.Error(err))
	}
}
