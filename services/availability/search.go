package availability

import "groupmeet/models"

// FindFreeSlots scans each day's half-hour grid for 60-minute windows that
// clear every constraint. A window starting at t qualifies only if both t
// and t+30 are free; both samples sit on half-hour boundaries. Days with no
// qualifying window are omitted from the result.
//
// The scan is brute force on purpose: 6 days of 28 half-hour points is a
// trivial search space, and the ordered walk makes results deterministic.
func FindFreeSlots(cs ConstraintSet) []models.DayFreeSlots {
	var result []models.DayFreeSlots

	for _, day := range models.WeekDays {
		var slots []models.FreeSlot
		for t := models.GridStartMinute; t+models.MeetingMinutes <= models.GridEndMinute; t += models.SlotMinutes {
			if cs.Free(day, t) && cs.Free(day, t+models.SlotMinutes) {
				slots = append(slots, models.FreeSlot{
					Day:   day,
					Start: t,
					End:   t + models.MeetingMinutes,
				})
			}
		}
		if len(slots) > 0 {
			result = append(result, models.DayFreeSlots{Day: day, Slots: slots})
		}
	}

	return result
}
