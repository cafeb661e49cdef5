package models

// FreeSlot is a 60-minute window free for the whole group. End is always
// Start + MeetingMinutes.
type FreeSlot struct {
	Day   DayCode `json:"day"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// DayFreeSlots groups a day's free slots in chronological order. Days with
// no free slot are omitted from results entirely.
type DayFreeSlots struct {
	Day   DayCode    `json:"day"`
	Slots []FreeSlot `json:"slots"`
}

// WeekAvailability is the full computed result for a group: the heatmap
// grid plus the free-slot list, both derived from the same snapshot.
type WeekAvailability struct {
	Grid      TimeGrid       `json:"grid"`
	FreeSlots []DayFreeSlots `json:"freeSlots"`
}
