package availability

import (
	"time"

	"groupmeet/models"
	"groupmeet/utils"

	"go.uber.org/zap"
)

// ConstraintSet bundles the three independent busy predicates the slot
// search must clear: the group composite, other groups' fixed bookings,
// and the coordinator's standing policy. An instant is usable only when
// all three report free.
type ConstraintSet struct {
	GroupBusy    func(day models.DayCode, minute int) bool
	ExternalBusy func(day models.DayCode, minute int) bool
	PersonalBusy func(day models.DayCode, minute int) bool
}

// Free reports whether every predicate clears the instant.
func (cs ConstraintSet) Free(day models.DayCode, minute int) bool {
	return !cs.GroupBusy(day, minute) && !cs.ExternalBusy(day, minute) && !cs.PersonalBusy(day, minute)
}

// NewConstraintSet derives the predicate bundle from a computed grid, the
// external booking list, and the injected personal policy.
func NewConstraintSet(grid *models.TimeGrid, bookings []models.ExternalBooking, policy models.AvailabilityPolicy) ConstraintSet {
	return ConstraintSet{
		GroupBusy: func(day models.DayCode, minute int) bool {
			cell := grid.Cell(day, minute)
			return cell != nil && len(cell.BusyMembers) > 0
		},
		ExternalBusy: externalBusyFunc(bookings),
		PersonalBusy: policy.IsBusy,
	}
}

// weekdayCodes maps external bookings' weekday names onto day codes.
// Sunday is absent on purpose; a Sunday booking can never block anything.
var weekdayCodes = map[string]models.DayCode{
	"Monday":    models.DayMon,
	"Tuesday":   models.DayTue,
	"Wednesday": models.DayWed,
	"Thursday":  models.DayThu,
	"Friday":    models.DayFri,
	"Saturday":  models.DaySat,
}

// resolvedBooking is a booking with its clock time resolved to minutes.
type resolvedBooking struct {
	day   models.DayCode
	start int
}

// externalBusyFunc resolves the booking list once and returns the busy
// predicate over it. Each booking blocks a fixed 60-minute window.
// Unresolvable bookings are logged and ignored; the source list is
// read-only, low-quality input from other groups.
func externalBusyFunc(bookings []models.ExternalBooking) func(models.DayCode, int) bool {
	logger := utils.GetLogger()

	resolved := make([]resolvedBooking, 0, len(bookings))
	for _, b := range bookings {
		day, ok := weekdayCodes[b.Day]
		if !ok {
			logger.Warn("external booking with unknown day dropped", zap.String("day", b.Day))
			continue
		}
		t, err := time.Parse("3:04 PM", b.StartTime)
		if err != nil {
			logger.Warn("external booking with unparseable start dropped",
				zap.String("startTime", b.StartTime), zap.Error(err))
			continue
		}
		resolved = append(resolved, resolvedBooking{day: day, start: t.Hour()*60 + t.Minute()})
	}

	return func(day models.DayCode, minute int) bool {
		for _, b := range resolved {
			if b.day == day && minute >= b.start && minute < b.start+models.MeetingMinutes {
				return true
			}
		}
		return false
	}
}
