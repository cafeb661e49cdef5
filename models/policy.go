package models

// MinuteRange is a half-open busy interval [Start, End) in minutes from
// midnight.
type MinuteRange struct {
	Start int `json:"start" mapstructure:"start"`
	End   int `json:"end" mapstructure:"end"`
}

// AvailabilityPolicy is the coordinator's fixed weekly unavailability,
// injected into the availability engine rather than compiled in.
type AvailabilityPolicy struct {
	Busy map[DayCode][]MinuteRange `json:"busy"`
}

// IsBusy reports whether the policy blocks the given instant.
func (p AvailabilityPolicy) IsBusy(day DayCode, minute int) bool {
	for _, r := range p.Busy[day] {
		if minute >= r.Start && minute < r.End {
			return true
		}
	}
	return false
}

// DefaultPersonalPolicy returns the coordinator's standing weekly policy:
// Tuesday and Friday fully blocked, Monday and Thursday mornings through
// 3 PM, Wednesday and Saturday 9-1 and 5-7.
func DefaultPersonalPolicy() AvailabilityPolicy {
	return AvailabilityPolicy{
		Busy: map[DayCode][]MinuteRange{
			DayMon: {{Start: 420, End: 900}},
			DayTue: {{Start: 0, End: 1440}},
			DayWed: {{Start: 540, End: 780}, {Start: 1020, End: 1140}},
			DayThu: {{Start: 420, End: 900}},
			DayFri: {{Start: 0, End: 1440}},
			DaySat: {{Start: 540, End: 780}, {Start: 1020, End: 1140}},
		},
	}
}
