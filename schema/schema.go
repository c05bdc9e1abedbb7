// Package schema has the models shared by every part of routeplot.
package schema

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrEmptySequence is returned when closing a sequence that holds no points.
var ErrEmptySequence = errors.New("sequence has no points")

// Point is a single (x, y) coordinate. Callers decide whether it holds
// (longitude, latitude) or some other pair such as (distance, count).
type Point = orb.Point

// PointSequence is an ordered path or polygon boundary.
// It implements the gonum.org/v1/plot/plotter.XYer interface.
type PointSequence []Point

// Len returns the number of points.
func (s PointSequence) Len() int {
	return len(s)
}

// XY returns the x and y values at index i, where i < Len().
func (s PointSequence) XY(i int) (float64, float64) {
	return s[i].X(), s[i].Y()
}

// Closed returns a copy of the sequence with its first point appended,
// which is how a tour is drawn as a loop.
func (s PointSequence) Closed() (PointSequence, error) {
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}
	out := make(PointSequence, len(s), len(s)+1)
	copy(out, s)
	return append(out, s[0]), nil
}

// Bound returns the axis-aligned bounding box of the sequence.
func (s PointSequence) Bound() orb.Bound {
	return orb.LineString(s).Bound()
}

// ScheduleSample is one sampled step of an annealing run.
type ScheduleSample struct {
	Temperature float64 `json:"temperature"`
	BestKm      float64 `json:"best_km"`
	CurrentKm   float64 `json:"current_km"`
}

// Schedule is an ordered list of samples as read from the schedule table.
type Schedule []ScheduleSample

// Best returns the (temperature, best distance) series.
func (s Schedule) Best() ScheduleSeries {
	return ScheduleSeries{samples: s, current: false}
}

// Current returns the (temperature, current distance) series.
func (s Schedule) Current() ScheduleSeries {
	return ScheduleSeries{samples: s, current: true}
}

// ScheduleSeries is a plotter.XYer view over one distance column of a Schedule.
type ScheduleSeries struct {
	samples Schedule
	current bool
}

// Len returns the number of samples.
func (s ScheduleSeries) Len() int {
	return len(s.samples)
}

// XY returns temperature and the selected distance at index i.
func (s ScheduleSeries) XY(i int) (float64, float64) {
	if s.current {
		return s.samples[i].Temperature, s.samples[i].CurrentKm
	}
	return s.samples[i].Temperature, s.samples[i].BestKm
}

// SequenceSummary describes one input file for the inspect report.
type SequenceSummary struct {
	Path      string  `json:"path"`
	Kind      Kind    `json:"kind"`
	Sequences int     `json:"sequences"`
	Points    int     `json:"points"`
	MinX      float64 `json:"min_x"`
	MaxX      float64 `json:"max_x"`
	MinY      float64 `json:"min_y"`
	MaxY      float64 `json:"max_y"`
	LengthKm  float64 `json:"length_km"`
}
