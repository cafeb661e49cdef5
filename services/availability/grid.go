package availability

import (
	"groupmeet/models"
	"groupmeet/services/timetable"
)

// BuildWeekGrid discretizes the group's week into half-hour cells with the
// busy member names per cell. The grid backs both the heatmap and the slot
// search, so the two can never disagree about a cell.
func BuildWeekGrid(snapshot *models.GroupSnapshot, mode Strictness) models.TimeGrid {
	indexes := make([]*timetable.OccupancyIndex, 0, len(snapshot.Timetables))
	for _, tt := range snapshot.Timetables {
		indexes = append(indexes, timetable.NewOccupancyIndex(tt))
	}

	grid := models.TimeGrid{Days: make([]models.DayGrid, 0, len(models.WeekDays))}
	for _, day := range models.WeekDays {
		dg := models.DayGrid{Day: day, Cells: make([]models.GridCell, 0, models.SlotsPerDay)}
		for start := models.GridStartMinute; start < models.GridEndMinute; start += models.SlotMinutes {
			dg.Cells = append(dg.Cells, models.GridCell{
				Start:       start,
				BusyMembers: busyMembers(indexes, day, start, mode),
			})
		}
		grid.Days = append(grid.Days, dg)
	}
	return grid
}

func busyMembers(indexes []*timetable.OccupancyIndex, day models.DayCode, start int, mode Strictness) []string {
	var busy []string
	for _, idx := range indexes {
		occupied := false
		switch mode {
		case StrictnessFullOverlap:
			occupied = idx.Overlaps(day, start, start+models.SlotMinutes)
		default:
			occupied = idx.IsBusy(day, start)
		}
		if occupied {
			busy = append(busy, idx.Name())
		}
	}
	return busy
}
