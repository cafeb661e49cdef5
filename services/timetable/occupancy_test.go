package timetable

import (
	"testing"

	"groupmeet/models"
)

func testIndex() *OccupancyIndex {
	return NewOccupancyIndex(models.MemberTimetable{
		Name: "Alice",
		Events: []models.ScheduleEvent{
			{Day: models.DayMon, Start: 540, End: 630},
			{Day: models.DayMon, Start: 780, End: 840},
			{Day: models.DayThu, Start: 540, End: 630},
		},
	})
}

func TestIsBusyHalfOpenInterval(t *testing.T) {
	idx := testIndex()

	cases := []struct {
		day    models.DayCode
		minute int
		want   bool
	}{
		{models.DayMon, 539, false},
		{models.DayMon, 540, true}, // start is inclusive
		{models.DayMon, 600, true},
		{models.DayMon, 629, true},
		{models.DayMon, 630, false}, // end is exclusive
		{models.DayMon, 700, false},
		{models.DayMon, 780, true},
		{models.DayThu, 600, true},
		{models.DayTue, 600, false}, // no events that day
	}
	for _, tc := range cases {
		if got := idx.IsBusy(tc.day, tc.minute); got != tc.want {
			t.Errorf("IsBusy(%q, %d) = %v, want %v", tc.day, tc.minute, got, tc.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	idx := testIndex()

	cases := []struct {
		day        models.DayCode
		start, end int
		want       bool
	}{
		{models.DayMon, 510, 540, false}, // touches start only
		{models.DayMon, 510, 541, true},
		{models.DayMon, 600, 660, true},
		{models.DayMon, 630, 660, false}, // starts at event end
		{models.DayMon, 640, 780, false}, // gap between events
		{models.DayTue, 540, 630, false},
	}
	for _, tc := range cases {
		if got := idx.Overlaps(tc.day, tc.start, tc.end); got != tc.want {
			t.Errorf("Overlaps(%q, %d, %d) = %v, want %v", tc.day, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestEmptyTimetableIsNeverBusy(t *testing.T) {
	idx := NewOccupancyIndex(models.MemberTimetable{Name: "Bob"})
	for _, day := range models.WeekDays {
		if idx.IsBusy(day, 600) {
			t.Errorf("empty timetable busy on %q", day)
		}
	}
}
