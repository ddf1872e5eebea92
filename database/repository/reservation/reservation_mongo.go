package reservationRepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"velora/database"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
// guards holds one document per master; CreateIfSlotFree writes it inside
// every booking transaction so concurrent writers for the same master
// conflict instead of committing side by side.
type MongoReservationRepo struct {
	coll   *mongo.Collection
	guards *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	return &MongoReservationRepo{
		coll:   database.DB().Collection("reservations"),
		guards: database.DB().Collection("booking_guards"),
	}
}
