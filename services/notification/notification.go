package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	profileRepo "velora/database/repository/profile"
	"velora/models"
	"velora/utils"
)

// Sender abstracts the FCM client so delivery can be faked in tests.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// fcmSender sends through the shared Firebase Messaging client.
type fcmSender struct{}

func (fcmSender) Send(ctx context.Context, message *messaging.Message) (string, error) {
	return utils.FCMClient.Send(ctx, message)
}

// DefaultNotificationService delivers booking pushes via FCM.
type DefaultNotificationService struct {
	Profiles profileRepo.ProfileRepository
	Sender   Sender
}

func NewDefaultNotificationService(profiles profileRepo.ProfileRepository) *DefaultNotificationService {
	return &DefaultNotificationService{
		Profiles: profiles,
		Sender:   fcmSender{},
	}
}

// DeliverBookingCreated informs the master about a fresh reservation.
// Missing destinations and disabled alert preferences are a logged no-op.
// Name lookups are best-effort; an unknown client still gets announced,
// just under a generic label.
func (s *DefaultNotificationService) DeliverBookingCreated(ctx context.Context, payload models.BookingNotifyPayload) error {
	logger := utils.GetLogger()

	contact, err := s.Profiles.GetContact(ctx, payload.MasterUID)
	if err != nil {
		logger.Warn("booking notify: master contact lookup failed",
			zap.String("masterUid", payload.MasterUID), zap.Error(err))
		return nil
	}
	if !contact.BookingAlerts {
		logger.Info("booking notify: master disabled booking alerts",
			zap.String("masterUid", payload.MasterUID))
		return nil
	}
	if contact.FCMToken == "" {
		logger.Info("booking notify: master has no push destination",
			zap.String("masterUid", payload.MasterUID))
		return nil
	}

	clientName := "A client"
	if name, err := s.Profiles.GetDisplayName(ctx, payload.ClientUID); err == nil && name != "" {
		clientName = name
	}

	service := payload.ServiceName
	if service == "" {
		service = "your service"
	}

	title := "New booking request"
	body := fmt.Sprintf("%s requested %s on %s at %s.",
		clientName, service,
		payload.Start.Format("Jan 2"), payload.Start.Format("15:04"))

	return s.send(ctx, contact.FCMToken, title, body, map[string]string{
		"type":          models.NotifyBookingCreated,
		"reservationId": payload.ReservationID,
	})
}

// DeliverStatusChange informs the client that the master confirmed or
// declined, or that the booking was cancelled.
func (s *DefaultNotificationService) DeliverStatusChange(ctx context.Context, payload models.BookingNotifyPayload) error {
	logger := utils.GetLogger()

	contact, err := s.Profiles.GetContact(ctx, payload.ClientUID)
	if err != nil {
		logger.Warn("booking notify: client contact lookup failed",
			zap.String("clientUid", payload.ClientUID), zap.Error(err))
		return nil
	}
	if contact.FCMToken == "" {
		logger.Info("booking notify: client has no push destination",
			zap.String("clientUid", payload.ClientUID))
		return nil
	}

	masterName := "The master"
	if name, err := s.Profiles.GetDisplayName(ctx, payload.MasterUID); err == nil && name != "" {
		masterName = name
	}

	var title, body string
	switch payload.Status {
	case models.StatusConfirmed:
		title = "Booking confirmed"
		body = fmt.Sprintf("%s confirmed your appointment on %s at %s.",
			masterName, payload.Start.Format("Jan 2"), payload.Start.Format("15:04"))
	case models.StatusDeclined:
		title = "Booking declined"
		body = fmt.Sprintf("%s declined your appointment request.", masterName)
	case models.StatusCancelled:
		title = "Booking cancelled"
		body = fmt.Sprintf("Your appointment on %s was cancelled.",
			payload.Start.Format("Jan 2"))
	default:
		return nil
	}

	return s.send(ctx, contact.FCMToken, title, body, map[string]string{
		"type":          models.NotifyBookingStatus,
		"reservationId": payload.ReservationID,
		"status":        payload.Status,
	})
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
