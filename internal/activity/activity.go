// Package activity turns multi-day forecasts into a ranked list of activity
// recommendations through a deterministic rule-based scoring pipeline.
package activity

import "fmt"

// Type is the closed set of supported activities. The declaration order is
// the fixed tie-break order used by the ranker.
type Type int

const (
	Skiing Type = iota
	Surfing
	IndoorSightseeing
	OutdoorSightseeing
)

// All returns the activity types in tie-break order.
func All() []Type {
	return []Type{Skiing, Surfing, IndoorSightseeing, OutdoorSightseeing}
}

func (t Type) String() string {
	switch t {
	case Skiing:
		return "SKIING"
	case Surfing:
		return "SURFING"
	case IndoorSightseeing:
		return "INDOOR_SIGHTSEEING"
	case OutdoorSightseeing:
		return "OUTDOOR_SIGHTSEEING"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Bounds returns the inclusive score range for an activity. Indoor
// sightseeing never drops below 40; it is always somewhat viable.
func (t Type) Bounds() (min, max int) {
	if t == IndoorSightseeing {
		return 40, 100
	}
	return 0, 100
}

// Suitability is a coarse tier derived purely from the aggregated score.
type Suitability string

const (
	Excellent Suitability = "EXCELLENT"
	Good      Suitability = "GOOD"
	Fair      Suitability = "FAIR"
	Poor      Suitability = "POOR"
)

// SuitabilityForScore buckets a score into its tier.
func SuitabilityForScore(score int) Suitability {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	case score >= 40:
		return Fair
	default:
		return Poor
	}
}
