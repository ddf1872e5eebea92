package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"velora/config"
	"velora/models"
	"velora/services/notification"
	"velora/services/tasks"
)

// InitNotifyWorker runs the async notification worker in the background.
// Delivery happens here, detached from the request path: a slow or failing
// push provider can only ever delay the push itself.
func InitNotifyWorker(notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, handleNotifyTask(notifSvc))

	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return err
		}

		var err error
		switch p.Kind {
		case models.NotifyBookingCreated:
			err = notifSvc.DeliverBookingCreated(ctx, p)
		case models.NotifyBookingStatus:
			err = notifSvc.DeliverStatusChange(ctx, p)
		default:
			log.Printf("[NotifyWorker] unknown notification kind: %s", p.Kind)
			return nil
		}

		if err != nil {
			log.Printf("[NotifyWorker] failed to deliver notification for reservation %s: %v", p.ReservationID, err)
		}
		return err
	}
}
