package profileRepo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"velora/database"
	"velora/models"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo constructs a new instance of MongoProfileRepo.
func NewMongoProfileRepo() ProfileRepository {
	return &MongoProfileRepo{
		coll: database.DB().Collection("profiles"),
	}
}

var offDayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// GetAvailability reads the profile document and normalizes the booking
// policy out of it. Profiles written by older app versions use camelCase
// field names; both spellings are honored.
func (repo *MongoProfileRepo) GetAvailability(ctx context.Context, masterUID string) (*models.AvailabilityPolicy, error) {
	doc, err := repo.fetch(ctx, masterUID)
	if err != nil {
		return nil, err
	}
	return normalizeAvailability(doc), nil
}

// normalizeAvailability turns a raw profile document into a typed policy.
// Malformed fields are dropped, never fatal.
func normalizeAvailability(doc bson.M) *models.AvailabilityPolicy {
	policy := &models.AvailabilityPolicy{
		// Masters who never touched the setting keep accepting bookings.
		AllowBookings: true,
	}
	if allow, ok := lookupBool(doc, "allow_bookings", "allowBookings"); ok {
		policy.AllowBookings = allow
	}

	if raw, ok := lookupValue(doc, "off_days", "offDays"); ok {
		if list, ok := raw.(bson.A); ok {
			days := make(map[string]struct{}, len(list))
			for _, entry := range list {
				s, ok := entry.(string)
				if !ok || !offDayPattern.MatchString(s) {
					continue
				}
				days[s] = struct{}{}
			}
			if len(days) > 0 {
				policy.OffDays = days
			}
		}
	}

	if raw, ok := lookupValue(doc, "working_hours", "workingHours"); ok {
		if sub, ok := raw.(bson.M); ok {
			start, _ := lookupString(sub, "start")
			end, _ := lookupString(sub, "end")
			if start != "" && end != "" {
				wh := models.WorkingHours{Start: start, End: end}
				if _, _, err := wh.Minutes(); err == nil {
					policy.WorkingHours = &wh
				}
			}
		}
	}

	return policy
}

func (repo *MongoProfileRepo) GetContact(ctx context.Context, uid string) (*models.MasterContact, error) {
	doc, err := repo.fetch(ctx, uid)
	if err != nil {
		return nil, err
	}

	contact := &models.MasterContact{
		UID:           uid,
		BookingAlerts: true,
	}
	contact.DisplayName, _ = lookupString(doc, "display_name", "displayName", "name")
	contact.FCMToken, _ = lookupString(doc, "fcm_token", "fcmToken")
	if alerts, ok := lookupBool(doc, "booking_alerts", "bookingAlerts", "notifyBooking"); ok {
		contact.BookingAlerts = alerts
	}
	return contact, nil
}

func (repo *MongoProfileRepo) GetDisplayName(ctx context.Context, uid string) (string, error) {
	contact, err := repo.GetContact(ctx, uid)
	if err != nil {
		return "", err
	}
	return contact.DisplayName, nil
}

func (repo *MongoProfileRepo) fetch(ctx context.Context, uid string) (bson.M, error) {
	var doc bson.M
	if err := repo.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error fetching profile %s: %w", uid, err)
	}
	return doc, nil
}

func lookupValue(doc bson.M, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func lookupString(doc bson.M, keys ...string) (string, bool) {
	v, ok := lookupValue(doc, keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func lookupBool(doc bson.M, keys ...string) (bool, bool) {
	v, ok := lookupValue(doc, keys...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
