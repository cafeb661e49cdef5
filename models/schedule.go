package models

// DayCode identifies a scheduling day. Sunday does not exist in this domain.
type DayCode string

const (
	DayMon DayCode = "M"
	DayTue DayCode = "T"
	DayWed DayCode = "W"
	DayThu DayCode = "H"
	DayFri DayCode = "F"
	DaySat DayCode = "S"
)

// WeekDays lists the scheduling days in week order.
var WeekDays = []DayCode{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat}

// DayNames maps day codes to their display names.
var DayNames = map[DayCode]string{
	DayMon: "Monday",
	DayTue: "Tuesday",
	DayWed: "Wednesday",
	DayThu: "Thursday",
	DayFri: "Friday",
	DaySat: "Saturday",
}

// ScheduleEvent is a single weekly commitment. Start and End are minutes
// from midnight (e.g., 540 for 9:00 AM); the interval is half-open
// [Start, End).
type ScheduleEvent struct {
	Day   DayCode `bson:"day" json:"day"`
	Start int     `bson:"start" json:"start"`
	End   int     `bson:"end" json:"end"`
	Label string  `bson:"label,omitempty" json:"label,omitempty"`
}

// MemberTimetable is one person's parsed weekly schedule. Raw keeps the
// original pasted text for re-display; every edit fully re-parses it.
type MemberTimetable struct {
	Name   string          `bson:"name" json:"name"`
	Raw    string          `bson:"raw" json:"raw"`
	Events []ScheduleEvent `bson:"events" json:"events"`
}

// StoredSchedule is the persisted form of a member timetable, keyed in the
// group document by the member's sanitized name.
type StoredSchedule struct {
	Raw    string          `bson:"raw" json:"raw"`
	Events []ScheduleEvent `bson:"events" json:"events"`
}

// Group is the persisted group document. Schedules is keyed by sanitized
// member name; dotted keys are illegal inside stored sub-documents.
type Group struct {
	ID        string                    `bson:"id" json:"id"`
	Name      string                    `bson:"name" json:"name"`
	Members   []string                  `bson:"members" json:"members"`
	Schedules map[string]StoredSchedule `bson:"schedules,omitempty" json:"schedules,omitempty"`
}

// GroupSnapshot is the in-memory join of a group's member list with their
// stored schedules, assembled fresh per request. Members without a matching
// stored schedule appear with an empty timetable.
type GroupSnapshot struct {
	GroupID    string            `json:"groupId"`
	Timetables []MemberTimetable `json:"timetables"`
}
