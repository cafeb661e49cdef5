package timetable

import (
	"context"

	scheduleRepo "groupmeet/database/repository/schedule"
	"groupmeet/models"
	"groupmeet/utils"

	"go.uber.org/zap"
)

// TimetableService manages one member's pasted schedule within a group.
type TimetableService interface {
	UpdateMemberTimetable(ctx context.Context, groupID, member, raw string) (*models.MemberTimetable, []SkippedLine, error)
	GetMemberTimetable(ctx context.Context, groupID, member string) (*models.MemberTimetable, error)
	RemoveMemberTimetable(ctx context.Context, groupID, member string) error
}

// DefaultTimetableService is the production implementation.
type DefaultTimetableService struct {
	Repo scheduleRepo.ScheduleRepository
}

// UpdateMemberTimetable fully re-parses the pasted text and replaces the
// member's stored schedule. There is no incremental update; the raw text is
// the source of truth. Skipped lines are returned as diagnostics, never as
// an error.
func (s *DefaultTimetableService) UpdateMemberTimetable(ctx context.Context, groupID, member, raw string) (*models.MemberTimetable, []SkippedLine, error) {
	logger := utils.GetLogger()

	res := Parse(raw)
	if len(res.Skipped) > 0 {
		logger.Debug("timetable lines skipped during parse",
			zap.String("groupID", groupID),
			zap.String("member", member),
			zap.Int("skipped", len(res.Skipped)))
	}

	key := SanitizeKey(member)
	stored := models.StoredSchedule{Raw: raw, Events: res.Events}
	if err := s.Repo.UpsertMemberSchedule(ctx, groupID, key, stored); err != nil {
		return nil, nil, err
	}

	utils.InvalidateAvailability(ctx, groupID)

	tt := &models.MemberTimetable{Name: member, Raw: raw, Events: res.Events}
	return tt, res.Skipped, nil
}

// GetMemberTimetable loads one member's stored schedule, matching the
// display name to the stored key by normalized comparison. A member without
// a stored schedule gets an empty timetable, not an error.
func (s *DefaultTimetableService) GetMemberTimetable(ctx context.Context, groupID, member string) (*models.MemberTimetable, error) {
	group, err := s.Repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	tt := &models.MemberTimetable{Name: member}
	keys := make([]string, 0, len(group.Schedules))
	for k := range group.Schedules {
		keys = append(keys, k)
	}

	key, ok, err := MatchScheduleKey(member, keys)
	if err != nil {
		utils.GetLogger().Warn("ambiguous schedule key match",
			zap.String("groupID", groupID), zap.String("member", member))
		return tt, nil
	}
	if !ok {
		return tt, nil
	}

	stored := group.Schedules[key]
	tt.Raw = stored.Raw
	tt.Events = stored.Events
	return tt, nil
}

// RemoveMemberTimetable deletes the member's stored schedule.
func (s *DefaultTimetableService) RemoveMemberTimetable(ctx context.Context, groupID, member string) error {
	if err := s.Repo.DeleteMemberSchedule(ctx, groupID, SanitizeKey(member)); err != nil {
		return err
	}
	utils.InvalidateAvailability(ctx, groupID)
	return nil
}
