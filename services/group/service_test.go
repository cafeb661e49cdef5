package group

import (
	"testing"

	"groupmeet/models"
)

func TestAssembleSnapshotJoinsSchedulesByFuzzyName(t *testing.T) {
	grp := &models.Group{
		ID:      "g1",
		Members: []string{"J.R. Smith", "Anne Marie", "Charlie"},
		Schedules: map[string]models.StoredSchedule{
			"J R Smith": {
				Raw:    "raw text",
				Events: []models.ScheduleEvent{{Day: models.DayMon, Start: 540, End: 630}},
			},
			"anne-marie": {
				Events: []models.ScheduleEvent{{Day: models.DayWed, Start: 780, End: 840}},
			},
		},
	}

	snap := AssembleSnapshot(grp)

	if snap.GroupID != "g1" {
		t.Errorf("got group ID %q", snap.GroupID)
	}
	if len(snap.Timetables) != 3 {
		t.Fatalf("expected 3 timetables, got %d", len(snap.Timetables))
	}

	byName := map[string]models.MemberTimetable{}
	for _, tt := range snap.Timetables {
		byName[tt.Name] = tt
	}

	if len(byName["J.R. Smith"].Events) != 1 {
		t.Error("J.R. Smith should match the sanitized key")
	}
	if len(byName["Anne Marie"].Events) != 1 {
		t.Error("Anne Marie should match despite punctuation drift")
	}
	// Name-matching failure degrades to an empty timetable, never an error.
	if len(byName["Charlie"].Events) != 0 {
		t.Error("Charlie has no stored schedule and should be empty")
	}
}

func TestAssembleSnapshotDegradesAmbiguousMatch(t *testing.T) {
	grp := &models.Group{
		ID:      "g2",
		Members: []string{"John Doe"},
		Schedules: map[string]models.StoredSchedule{
			"John Doe": {Events: []models.ScheduleEvent{{Day: models.DayMon, Start: 540, End: 630}}},
			"john doe": {Events: []models.ScheduleEvent{{Day: models.DayTue, Start: 540, End: 630}}},
		},
	}

	snap := AssembleSnapshot(grp)
	if len(snap.Timetables) != 1 {
		t.Fatalf("expected 1 timetable, got %d", len(snap.Timetables))
	}
	if len(snap.Timetables[0].Events) != 0 {
		t.Error("ambiguous match must not silently pick a schedule")
	}
}
