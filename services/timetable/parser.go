package timetable

import (
	"regexp"
	"strconv"
	"strings"

	"groupmeet/models"
)

// fieldSep splits a pasted timetable line into fields: a tab or a run of
// two or more spaces. Single spaces stay inside a field ("Dr. X").
var fieldSep = regexp.MustCompile(`\t| {2,}`)

const headerToken = "Courses"

// Field positions in a pasted line. Day and time fields may carry several
// " / "-joined values when a course meets more than once a week.
const (
	fieldCode = 0
	fieldDay  = 4
	fieldTime = 5
	minFields = 6
)

// SkippedLine records one dropped input line so best-effort parsing stays
// observable. Dropping is never an error.
type SkippedLine struct {
	LineNo int    `json:"lineNo"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// ParseResult is the outcome of parsing one member's pasted timetable text.
type ParseResult struct {
	Events  []models.ScheduleEvent `json:"events"`
	Skipped []SkippedLine          `json:"skipped,omitempty"`
}

// dayTokens maps normalized day tokens to day codes. "TH" is rewritten to
// the Thursday code before lookup so it can never collide with Tuesday.
var dayTokens = map[string]models.DayCode{
	"M": models.DayMon,
	"T": models.DayTue,
	"W": models.DayWed,
	"H": models.DayThu,
	"F": models.DayFri,
	"S": models.DaySat,
}

// Parse turns raw pasted timetable text into schedule events, one per
// resolved (day, time-range) pair. Lines that cannot be understood are
// dropped and reported in the result; Parse never fails.
func Parse(raw string) ParseResult {
	var res ParseResult

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := fieldSep.Split(line, -1)
		if len(fields) < minFields {
			res.Skipped = append(res.Skipped, SkippedLine{LineNo: i + 1, Text: line, Reason: "too few fields"})
			continue
		}
		if strings.TrimSpace(fields[fieldCode]) == headerToken {
			res.Skipped = append(res.Skipped, SkippedLine{LineNo: i + 1, Text: line, Reason: "header"})
			continue
		}

		events := parseLine(fields)
		if len(events) == 0 {
			res.Skipped = append(res.Skipped, SkippedLine{LineNo: i + 1, Text: line, Reason: "no valid day/time pair"})
			continue
		}
		res.Events = append(res.Events, events...)
	}

	return res
}

// parseLine resolves one line's day and time fields into events. The i-th
// day token pairs with the i-th time token; when the counts differ, every
// day falls back to the first time token.
func parseLine(fields []string) []models.ScheduleEvent {
	label := strings.TrimSpace(fields[fieldCode])
	days := strings.Split(fields[fieldDay], " / ")
	times := strings.Split(fields[fieldTime], " / ")

	var events []models.ScheduleEvent
	for i, dtok := range days {
		day, ok := normalizeDay(dtok)
		if !ok {
			continue
		}

		ttok := times[0]
		if i < len(times) {
			ttok = times[i]
		}
		start, end, ok := parseTimeRange(ttok)
		if !ok {
			continue
		}

		events = append(events, models.ScheduleEvent{
			Day:   day,
			Start: start,
			End:   end,
			Label: label,
		})
	}
	return events
}

// normalizeDay canonicalizes a day token. "TH"/"Th" become the Thursday
// code, which is distinct from Tuesday's "T".
func normalizeDay(tok string) (models.DayCode, bool) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	if tok == "TH" {
		tok = string(models.DayThu)
	}
	day, ok := dayTokens[tok]
	return day, ok
}

// parseTimeRange converts "H:MM-H:MM" into absolute minutes from midnight.
func parseTimeRange(tok string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(tok), "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok := parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	if start >= end || end > 1440 {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
