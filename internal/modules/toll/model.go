// README: Domain model for express-lane toll segments and route steps.
package toll

import (
	"time"

	"tollcents/internal/geo"
)

// Maneuver is the closed set of maneuver tags the route provider can
// attach to a step. Anything we do not act on collapses to ManeuverOther.
type Maneuver string

const (
	ManeuverNone      Maneuver = ""
	ManeuverRampLeft  Maneuver = "ramp-left"
	ManeuverRampRight Maneuver = "ramp-right"
	ManeuverOther     Maneuver = "other"
)

// ParseManeuver maps a provider-supplied maneuver string onto the closed set.
func ParseManeuver(s string) Maneuver {
	switch s {
	case "":
		return ManeuverNone
	case string(ManeuverRampLeft):
		return ManeuverRampLeft
	case string(ManeuverRampRight):
		return ManeuverRampRight
	default:
		return ManeuverOther
	}
}

func (m Maneuver) isRamp() bool {
	return m == ManeuverRampLeft || m == ManeuverRampRight
}

// RouteStep is one leg of a route as returned by the directions provider.
// Read-only to this package.
type RouteStep struct {
	DistanceMeters  float64
	StaticDuration  time.Duration
	EncodedPolyline string
	StartLocation   geo.Coordinate
	EndLocation     geo.Coordinate
	Maneuver        Maneuver
	Instructions    string
}

// AccessPoint is a geographic entry or exit gate of a toll segment.
type AccessPoint struct {
	Description string         `json:"description"`
	Location    geo.Coordinate `json:"location"`
}

// TimeOfDayPrice is one row of a segment's congestion price table.
type TimeOfDayPrice struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// TollSegment is a reference-data record describing one express-lane
// segment: where it can be entered and exited, and what it costs per
// day-of-week and time label. Loaded as an immutable snapshot; never
// mutated after load.
type TollSegment struct {
	Description      string                      `json:"description"`
	EntryPoints      []AccessPoint               `json:"entryPoints"`
	ExitPoints       []AccessPoint               `json:"exitPoints"`
	TimeOfDayPricing map[string][]TimeOfDayPrice `json:"timeOfDayPricing"`
}

// Estimate is the result of one toll price calculation.
type Estimate struct {
	// TotalTollPrice is the summed time-of-day price of every resolved
	// segment, after the no-tag multiplier. May be 0.
	TotalTollPrice float64 `json:"totalTollPrice"`
	// HasDynamicTollSteps reports whether any billable express-lane step
	// was detected at all.
	HasDynamicTollSteps bool `json:"hasDynamicTollSteps"`
	// AllSegmentsMatched reports whether every detected step was fully
	// resolved to a price. When false the total is a lower bound.
	AllSegmentsMatched bool `json:"allSegmentsMatched"`
}
