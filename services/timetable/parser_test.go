package timetable

import (
	"testing"

	"groupmeet/models"
)

func TestParseZipsDayAndTimeFields(t *testing.T) {
	raw := "CS101\tDatabases\tDr.X\tRoom1\tM / W\t09:00-10:30 / 13:00-14:00\tRoom1"
	res := Parse(raw)

	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}
	want := []models.ScheduleEvent{
		{Day: models.DayMon, Start: 540, End: 630, Label: "CS101"},
		{Day: models.DayWed, Start: 780, End: 840, Label: "CS101"},
	}
	for i, ev := range res.Events {
		if ev != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, ev, want[i])
		}
	}
	if len(res.Skipped) != 0 {
		t.Errorf("expected no skipped lines, got %d", len(res.Skipped))
	}
}

func TestParseFallsBackToFirstTimeToken(t *testing.T) {
	raw := "PHY200\tMechanics\tDr.Y\tLab2\tM / W / F\t10:00-11:00\tLab2"
	res := Parse(raw)

	if len(res.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(res.Events))
	}
	wantDays := []models.DayCode{models.DayMon, models.DayWed, models.DayFri}
	for i, ev := range res.Events {
		if ev.Day != wantDays[i] {
			t.Errorf("event %d: got day %q, want %q", i, ev.Day, wantDays[i])
		}
		if ev.Start != 600 || ev.End != 660 {
			t.Errorf("event %d: got %d-%d, want 600-660", i, ev.Start, ev.End)
		}
	}
}

func TestParseThursdayNeverBecomesTuesday(t *testing.T) {
	for _, tok := range []string{"TH", "Th", "H"} {
		raw := "CS101\tDatabases\tDr.X\tRoom1\t" + tok + "\t09:00-10:30\tRoom1"
		res := Parse(raw)
		if len(res.Events) != 1 {
			t.Fatalf("token %q: expected 1 event, got %d", tok, len(res.Events))
		}
		if res.Events[0].Day != models.DayThu {
			t.Errorf("token %q: got day %q, want Thursday", tok, res.Events[0].Day)
		}
		if res.Events[0].Day == models.DayTue {
			t.Errorf("token %q: produced Tuesday", tok)
		}
	}
}

func TestParseScenarioLine(t *testing.T) {
	raw := "CS101\tDatabases\tDr.X\tRoom1\tM / H\t09:00-10:30 / 09:00-10:30\tRoom1"
	res := Parse(raw)

	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}
	if res.Events[0].Day != models.DayMon || res.Events[0].Start != 540 || res.Events[0].End != 630 {
		t.Errorf("first event: got %+v", res.Events[0])
	}
	if res.Events[1].Day != models.DayThu || res.Events[1].Start != 540 || res.Events[1].End != 630 {
		t.Errorf("second event: got %+v", res.Events[1])
	}
}

func TestParseSplitsOnTwoOrMoreSpaces(t *testing.T) {
	raw := "CS101  Databases  Dr. X  Room 1  W  13:00-14:30  Room 1"
	res := Parse(raw)

	if len(res.Events) != 1 {
		t.Fatalf("expected 1 event, got %d (skipped: %+v)", len(res.Events), res.Skipped)
	}
	ev := res.Events[0]
	if ev.Day != models.DayWed || ev.Start != 780 || ev.End != 870 {
		t.Errorf("got %+v", ev)
	}
}

func TestParseSkipsMalformedLinesWithDiagnostics(t *testing.T) {
	raw := "Courses\tTitle\tInstructor\tRoom\tDays\tTimes\tVenue\n" +
		"too\tfew\tfields\n" +
		"CS101\tDatabases\tDr.X\tRoom1\tX\t09:00-10:30\tRoom1\n" +
		"CS102\tNetworks\tDr.Z\tRoom2\tF\t08:00-09:30\tRoom2\n" +
		"\n"
	res := Parse(raw)

	if len(res.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(res.Events))
	}
	if res.Events[0].Day != models.DayFri {
		t.Errorf("got day %q, want Friday", res.Events[0].Day)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skipped lines, got %d: %+v", len(res.Skipped), res.Skipped)
	}
	wantReasons := map[int]string{1: "header", 2: "too few fields", 3: "no valid day/time pair"}
	for _, sk := range res.Skipped {
		if want, ok := wantReasons[sk.LineNo]; !ok || sk.Reason != want {
			t.Errorf("line %d: got reason %q, want %q", sk.LineNo, sk.Reason, want)
		}
	}
}

func TestParseRejectsInvertedTimeRange(t *testing.T) {
	raw := "CS101\tDatabases\tDr.X\tRoom1\tM\t11:00-10:00\tRoom1"
	res := Parse(raw)

	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %+v", res.Events)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %d", len(res.Skipped))
	}
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"just some pasted prose with no structure at all",
		"a\tb\tc\td\te\tf",
		"a\tb\tc\td\tM / \t09:00-10:30 / \tg",
	}
	for _, raw := range inputs {
		_ = Parse(raw)
	}
}
