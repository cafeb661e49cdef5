package availability

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "groupmeet/database/repository/booking"
	"groupmeet/models"
	"groupmeet/services/group"
	"groupmeet/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityEngine computes a group's week availability on demand.
type AvailabilityEngine interface {
	WeekAvailability(ctx context.Context, groupID string) (*models.WeekAvailability, error)
}

// DefaultAvailabilityEngine is the production engine. Results are cached
// per group with a short TTL; any timetable or member write invalidates the
// cache, so a recompute is always a full rebuild from the stored snapshot.
type DefaultAvailabilityEngine struct {
	Groups     group.GroupService
	Bookings   bookingRepo.BookingRepository
	Cache      *redis.Client
	Policy     models.AvailabilityPolicy
	Strictness Strictness
	CacheTTL   time.Duration
}

// WeekAvailability returns the cached result when present, otherwise
// rebuilds it from the group snapshot and the external booking list.
func (e *DefaultAvailabilityEngine) WeekAvailability(ctx context.Context, groupID string) (*models.WeekAvailability, error) {
	logger := utils.GetLogger()
	cacheKey := utils.AvailabilityCacheKey(groupID, e.Strictness.String())

	if e.Cache != nil {
		if data, err := e.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.WeekAvailability
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
			logger.Warn("dropping unreadable cached availability", zap.String("groupID", groupID))
		}
	}

	snapshot, err := e.Groups.BuildSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	bookings, err := e.Bookings.List(ctx)
	if err != nil {
		// Booking fetch failures belong to the persistence layer; compute
		// with what we have rather than failing the whole request.
		logger.Error("failed to list external bookings; computing without them",
			zap.String("groupID", groupID), zap.Error(err))
		bookings = nil
	}

	result := e.Compute(snapshot, bookings)

	if e.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := e.Cache.Set(ctx, cacheKey, data, e.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("groupID", groupID), zap.Error(err))
			}
		}
	}

	return result, nil
}

// Compute is the pure recompute pipeline: snapshot -> grid -> constraints
// -> free slots. Identical inputs always produce identical output.
func (e *DefaultAvailabilityEngine) Compute(snapshot *models.GroupSnapshot, bookings []models.ExternalBooking) *models.WeekAvailability {
	grid := BuildWeekGrid(snapshot, e.Strictness)
	cs := NewConstraintSet(&grid, bookings, e.Policy)
	return &models.WeekAvailability{
		Grid:      grid,
		FreeSlots: FindFreeSlots(cs),
	}
}
