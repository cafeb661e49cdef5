package models

// ExternalBooking is another group's fixed reservation. Each booking is
// implicitly 60 minutes long; this core never modifies bookings.
type ExternalBooking struct {
	Day       string `bson:"day" json:"day"`             // weekday name, e.g. "Wednesday"
	StartTime string `bson:"startTime" json:"startTime"` // e.g. "10:00 AM"
}
