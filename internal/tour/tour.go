// Package tour computes great-circle lengths and bounds of point sequences
// read as (longitude, latitude) pairs.
package tour

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tspviz/routeplot/schema"
)

const metersPerKm = 1000.0

// Length returns the haversine length in km of the open polyline.
func Length(seq schema.PointSequence) float64 {
	var total float64
	for i := 1; i < len(seq); i++ {
		total += geo.DistanceHaversine(seq[i-1], seq[i])
	}
	return total / metersPerKm
}

// TourLength returns the length in km of the closed tour, including the
// leg back to the first point.
func TourLength(seq schema.PointSequence) float64 {
	closed, err := seq.Closed()
	if err != nil {
		return 0
	}
	return Length(closed)
}

// Summarize builds the inspect row for one input file. A points file counts
// as a closed tour; a polygon file sums its open boundaries.
func Summarize(path string, kind schema.Kind, seqs []schema.PointSequence) schema.SequenceSummary {
	summary := schema.SequenceSummary{
		Path:      path,
		Kind:      kind,
		Sequences: len(seqs),
	}

	var (
		bound orb.Bound
		found bool
	)
	for _, seq := range seqs {
		if len(seq) == 0 {
			continue
		}
		summary.Points += len(seq)
		if kind == schema.PointsKind {
			summary.LengthKm += TourLength(seq)
		} else {
			summary.LengthKm += Length(seq)
		}
		if !found {
			bound, found = seq.Bound(), true
		} else {
			bound = bound.Union(seq.Bound())
		}
	}

	if found {
		summary.MinX, summary.MinY = bound.Min.X(), bound.Min.Y()
		summary.MaxX, summary.MaxY = bound.Max.X(), bound.Max.Y()
	}
	return summary
}
