package timetable

import "groupmeet/models"

// OccupancyIndex answers point-in-time and interval busy queries for one
// member's timetable. A linear scan is deliberate: members carry at most a
// few dozen events, so anything fancier buys nothing.
type OccupancyIndex struct {
	name   string
	events []models.ScheduleEvent
}

// NewOccupancyIndex builds an index over one member's parsed timetable.
func NewOccupancyIndex(tt models.MemberTimetable) *OccupancyIndex {
	return &OccupancyIndex{name: tt.Name, events: tt.Events}
}

// Name returns the member's display name.
func (idx *OccupancyIndex) Name() string {
	return idx.name
}

// IsBusy reports whether the member is committed at the given instant.
// Event intervals are half-open: a class ending at minute t leaves the
// member free at t.
func (idx *OccupancyIndex) IsBusy(day models.DayCode, minute int) bool {
	for _, ev := range idx.events {
		if ev.Day == day && minute >= ev.Start && minute < ev.End {
			return true
		}
	}
	return false
}

// Overlaps reports whether any event intersects [start, end) on the given
// day.
func (idx *OccupancyIndex) Overlaps(day models.DayCode, start, end int) bool {
	for _, ev := range idx.events {
		if ev.Day == day && ev.Start < end && ev.End > start {
			return true
		}
	}
	return false
}
