// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"groupmeet/database"
	"groupmeet/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository reads other groups' fixed reservations. The scheduling
// core only ever lists bookings; Replace exists for the admin surface that
// maintains the list.
type BookingRepository interface {
	List(ctx context.Context) ([]models.ExternalBooking, error)
	Replace(ctx context.Context, bookings []models.ExternalBooking) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("groupmeet")
	return &mongoBookingRepo{
		coll: db.Collection("externalBookings"),
	}
}
