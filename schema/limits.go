package schema

import "github.com/paulmach/orb"

// Range is an inclusive axis interval.
type Range struct {
	Min, Max float64
}

// Limits holds optional explicit axis ranges. A nil field means
// the axis falls back to its preset or to autoscaling.
type Limits struct {
	X *Range
	Y *Range
}

// IsZero reports whether no explicit range was supplied.
func (l Limits) IsZero() bool {
	return l.X == nil && l.Y == nil
}

// Preset geographic windows selected by the region flag.
var (
	WorldBound    = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
	RegionalBound = orb.Bound{Min: orb.Point{-180, 10}, Max: orb.Point{-60, 75}}
)

// Bound returns the preset window of the region. Anything other than
// WorldRegion selects the regional default.
func (r Region) Bound() orb.Bound {
	if r == WorldRegion {
		return WorldBound
	}
	return RegionalBound
}

// Resolve returns the window to draw: explicit ranges win per axis,
// the region preset fills the rest.
func (l Limits) Resolve(region Region) orb.Bound {
	b := region.Bound()
	if l.X != nil {
		b.Min[0], b.Max[0] = l.X.Min, l.X.Max
	}
	if l.Y != nil {
		b.Min[1], b.Max[1] = l.Y.Min, l.Y.Max
	}
	return b
}
