// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"groupmeet/models"
)

// ErrUnsanitizedKey rejects schedule keys that would be illegal as nested
// document keys.
var ErrUnsanitizedKey = errors.New("schedule key contains a dot; sanitize member names before persisting")

func (r *mongoScheduleRepo) CreateGroup(ctx context.Context, group models.Group) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, group)
	return err
}

func (r *mongoScheduleRepo) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	err := r.coll.FindOne(ctx, bson.M{"id": groupID}).Decode(&group)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mongoScheduleRepo) ListGroups(ctx context.Context) ([]models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoScheduleRepo) UpdateMembers(ctx context.Context, groupID string, members []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$set": bson.M{"members": members}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) UpsertMemberSchedule(ctx context.Context, groupID, key string, sched models.StoredSchedule) error {
	if strings.Contains(key, ".") {
		return ErrUnsanitizedKey
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$set": bson.M{"schedules." + key: sched}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteMemberSchedule(ctx context.Context, groupID, key string) error {
	if strings.Contains(key, ".") {
		return ErrUnsanitizedKey
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$unset": bson.M{"schedules." + key: ""}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
