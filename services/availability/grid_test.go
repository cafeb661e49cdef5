package availability

import (
	"testing"

	"groupmeet/models"
)

func snapshotWith(events ...models.ScheduleEvent) *models.GroupSnapshot {
	return &models.GroupSnapshot{
		GroupID: "g1",
		Timetables: []models.MemberTimetable{
			{Name: "Alice", Events: events},
			{Name: "Bob"},
		},
	}
}

func TestBuildWeekGridGeometry(t *testing.T) {
	grid := BuildWeekGrid(snapshotWith(), StrictnessPointSample)

	if len(grid.Days) != 6 {
		t.Fatalf("expected 6 days, got %d", len(grid.Days))
	}
	for i, dg := range grid.Days {
		if dg.Day != models.WeekDays[i] {
			t.Errorf("day %d: got %q, want %q", i, dg.Day, models.WeekDays[i])
		}
		if len(dg.Cells) != models.SlotsPerDay {
			t.Errorf("day %q: got %d cells, want %d", dg.Day, len(dg.Cells), models.SlotsPerDay)
		}
		if dg.Cells[0].Start != models.GridStartMinute {
			t.Errorf("day %q: first cell starts at %d", dg.Day, dg.Cells[0].Start)
		}
		last := dg.Cells[len(dg.Cells)-1]
		if last.Start != models.GridEndMinute-models.SlotMinutes {
			t.Errorf("day %q: last cell starts at %d", dg.Day, last.Start)
		}
	}
}

func TestGridCellOccupancyMatchesMemberEvents(t *testing.T) {
	grid := BuildWeekGrid(snapshotWith(
		models.ScheduleEvent{Day: models.DayMon, Start: 540, End: 630},
	), StrictnessPointSample)

	cases := []struct {
		start int
		busy  bool
	}{
		{510, false},
		{540, true},
		{570, true},
		{600, true},
		{630, false}, // half-open end
	}
	for _, tc := range cases {
		cell := grid.Cell(models.DayMon, tc.start)
		if cell == nil {
			t.Fatalf("no cell at %d", tc.start)
		}
		got := len(cell.BusyMembers) > 0
		if got != tc.busy {
			t.Errorf("cell %d: busy=%v, want %v", tc.start, got, tc.busy)
		}
		if tc.busy && cell.BusyMembers[0] != "Alice" {
			t.Errorf("cell %d: busy members %v", tc.start, cell.BusyMembers)
		}
	}

	// Other days stay untouched.
	if cell := grid.Cell(models.DayTue, 540); len(cell.BusyMembers) != 0 {
		t.Errorf("Tuesday cell unexpectedly busy: %v", cell.BusyMembers)
	}
}

// An event living strictly inside one cell is invisible to point sampling
// but caught by full overlap. Both behaviors are intentional and selectable.
func TestStrictnessModesDisagreeOnMidCellEvents(t *testing.T) {
	snap := snapshotWith(models.ScheduleEvent{Day: models.DayWed, Start: 545, End: 555})

	point := BuildWeekGrid(snap, StrictnessPointSample)
	if cell := point.Cell(models.DayWed, 540); len(cell.BusyMembers) != 0 {
		t.Errorf("point sampling should miss a mid-cell event, got %v", cell.BusyMembers)
	}

	overlap := BuildWeekGrid(snap, StrictnessFullOverlap)
	if cell := overlap.Cell(models.DayWed, 540); len(cell.BusyMembers) != 1 {
		t.Errorf("full overlap should catch a mid-cell event, got %v", cell.BusyMembers)
	}
}

func TestParseStrictness(t *testing.T) {
	if ParseStrictness("fulloverlap") != StrictnessFullOverlap {
		t.Error("fulloverlap not recognized")
	}
	if ParseStrictness("pointsample") != StrictnessPointSample {
		t.Error("pointsample not recognized")
	}
	if ParseStrictness("") != StrictnessPointSample {
		t.Error("default strictness should be point sampling")
	}
}
