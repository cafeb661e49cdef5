package group

import (
	"context"
	"errors"

	scheduleRepo "groupmeet/database/repository/schedule"
	"groupmeet/models"
	"groupmeet/services/timetable"
	"groupmeet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroupService owns group CRUD and snapshot assembly.
type GroupService interface {
	CreateGroup(ctx context.Context, name string, members []string) (*models.Group, error)
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	SetMembers(ctx context.Context, groupID string, members []string) error
	BuildSnapshot(ctx context.Context, groupID string) (*models.GroupSnapshot, error)
}

// DefaultGroupService is the production implementation.
type DefaultGroupService struct {
	Repo scheduleRepo.ScheduleRepository
}

func (s *DefaultGroupService) CreateGroup(ctx context.Context, name string, members []string) (*models.Group, error) {
	if name == "" {
		return nil, errors.New("group name is required")
	}
	group := models.Group{
		ID:      uuid.New().String(),
		Name:    name,
		Members: members,
	}
	if err := s.Repo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *DefaultGroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.Repo.GetGroup(ctx, groupID)
}

func (s *DefaultGroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.Repo.ListGroups(ctx)
}

func (s *DefaultGroupService) SetMembers(ctx context.Context, groupID string, members []string) error {
	if err := s.Repo.UpdateMembers(ctx, groupID, members); err != nil {
		return err
	}
	utils.InvalidateAvailability(ctx, groupID)
	return nil
}

// BuildSnapshot joins the group's member list with its stored schedules,
// loaded fresh from the store. Members whose display name matches no stored
// key (or matches ambiguously) get an empty timetable; that is a degraded
// result, not an error.
func (s *DefaultGroupService) BuildSnapshot(ctx context.Context, groupID string) (*models.GroupSnapshot, error) {
	group, err := s.Repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return AssembleSnapshot(group), nil
}

// AssembleSnapshot is the pure join of members to stored schedules.
func AssembleSnapshot(group *models.Group) *models.GroupSnapshot {
	logger := utils.GetLogger()

	keys := make([]string, 0, len(group.Schedules))
	for k := range group.Schedules {
		keys = append(keys, k)
	}

	snap := &models.GroupSnapshot{GroupID: group.ID}
	for _, member := range group.Members {
		tt := models.MemberTimetable{Name: member}

		key, ok, err := timetable.MatchScheduleKey(member, keys)
		if err != nil {
			logger.Warn("ambiguous schedule key match; treating member as unscheduled",
				zap.String("groupID", group.ID), zap.String("member", member))
		} else if ok {
			stored := group.Schedules[key]
			tt.Raw = stored.Raw
			tt.Events = stored.Events
		}

		snap.Timetables = append(snap.Timetables, tt)
	}
	return snap
}
