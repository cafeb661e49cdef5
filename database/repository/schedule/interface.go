// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"groupmeet/database"
	"groupmeet/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists groups and their members' stored schedules.
// Schedule map keys must already be sanitized (no dots); the store rejects
// dotted keys inside nested documents.
type ScheduleRepository interface {
	CreateGroup(ctx context.Context, group models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	UpdateMembers(ctx context.Context, groupID string, members []string) error
	UpsertMemberSchedule(ctx context.Context, groupID, key string, sched models.StoredSchedule) error
	DeleteMemberSchedule(ctx context.Context, groupID, key string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("groupmeet")
	return &mongoScheduleRepo{
		coll: db.Collection("groups"),
	}
}
