package availability

// Strictness controls how a half-hour grid cell is classified.
//
// Point sampling looks only at the cell's start instant, which is how the
// legacy grid behaved: a class ending mid-cell leaves the cell "free".
// Full overlap marks the cell busy if any event intersects any part of it.
// Both modes are kept selectable so the difference stays testable.
type Strictness int

const (
	StrictnessPointSample Strictness = iota
	StrictnessFullOverlap
)

// ParseStrictness maps the config string to a mode, defaulting to point
// sampling.
func ParseStrictness(s string) Strictness {
	if s == "fulloverlap" {
		return StrictnessFullOverlap
	}
	return StrictnessPointSample
}

func (s Strictness) String() string {
	if s == StrictnessFullOverlap {
		return "fulloverlap"
	}
	return "pointsample"
}
