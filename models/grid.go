package models

// Week grid geometry: 6 days of half-hour cells spanning 07:00-21:00.
const (
	GridStartMinute = 420  // 7:00 AM
	GridEndMinute   = 1260 // 9:00 PM
	SlotMinutes     = 30
	SlotsPerDay     = (GridEndMinute - GridStartMinute) / SlotMinutes // 28
	MeetingMinutes  = 60
)

// GridCell is one half-hour cell of the week grid. BusyMembers lists the
// names of group members committed during the cell; the cell is free iff
// the list is empty.
type GridCell struct {
	Start       int      `json:"start"`
	BusyMembers []string `json:"busyMembers,omitempty"`
}

// DayGrid is one day's column of cells, ordered chronologically.
type DayGrid struct {
	Day   DayCode    `json:"day"`
	Cells []GridCell `json:"cells"`
}

// TimeGrid is the discretized week used for the heatmap and for slot search.
type TimeGrid struct {
	Days []DayGrid `json:"days"`
}

// Cell returns the cell starting at the given minute for the given day,
// or nil if the day or minute is outside the grid.
func (g *TimeGrid) Cell(day DayCode, start int) *GridCell {
	for i := range g.Days {
		if g.Days[i].Day != day {
			continue
		}
		idx := (start - GridStartMinute) / SlotMinutes
		if start < GridStartMinute || idx >= len(g.Days[i].Cells) {
			return nil
		}
		return &g.Days[i].Cells[idx]
	}
	return nil
}
