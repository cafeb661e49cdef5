// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"groupmeet/models"
)

func (r *mongoBookingRepo) List(ctx context.Context) ([]models.ExternalBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.ExternalBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) Replace(ctx context.Context, bookings []models.ExternalBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(bookings) == 0 {
		return nil
	}

	docs := make([]interface{}, len(bookings))
	for i, b := range bookings {
		docs[i] = b
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
