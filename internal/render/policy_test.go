package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tspviz/routeplot/schema"
)

func TestOptimizedStyle(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		lineWidth  float64
		markerSize float64
	}{
		{name: "tiny route", n: 4, lineWidth: 2.0, markerSize: 3.0},
		{name: "exactly at the limit", n: 300, lineWidth: 2.0, markerSize: 3.0},
		{name: "just above the limit", n: 301, lineWidth: 0.7, markerSize: 1.2},
		{name: "large route", n: 2001, lineWidth: 0.7, markerSize: 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lw, ms := OptimizedStyle(tt.n)
			assert.Equal(t, tt.lineWidth, lw)
			assert.Equal(t, tt.markerSize, ms)
		})
	}
}

func TestShowInitial(t *testing.T) {
	tests := []struct {
		n        int
		expected bool
	}{
		{n: 0, expected: true},
		{n: 151, expected: true},
		{n: 299, expected: true},
		{n: 300, expected: false},
		{n: 1001, expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ShowInitial(tt.n), "n=%d", tt.n)
	}
}

func TestRegionLimits(t *testing.T) {
	world := RegionLimits(schema.WorldRegion)
	require.NotNil(t, world.X)
	require.NotNil(t, world.Y)
	assert.Equal(t, schema.Range{Min: -180, Max: 180}, *world.X)
	assert.Equal(t, schema.Range{Min: -90, Max: 90}, *world.Y)

	regional := RegionLimits(schema.RegionalRegion)
	assert.Equal(t, schema.Range{Min: -180, Max: -60}, *regional.X)
	assert.Equal(t, schema.Range{Min: 10, Max: 75}, *regional.Y)

	assert.Equal(t, regional, RegionLimits(""))
}

func TestAnnotationText(t *testing.T) {
	assert.Equal(t, "Initial: 12345.7 km\nAfter SA: 9876.5 km", AnnotationText(12345.67, 9876.54))
	assert.Equal(t, "Initial: 0.0 km\nAfter SA: 0.0 km", AnnotationText(0, 0))
}

func TestMarkerRadius(t *testing.T) {
	assert.InDelta(t, 1.5, float64(markerRadius(3.0)), 1e-9)
	assert.InDelta(t, 1.414, float64(areaRadius(8.0)), 1e-3)
}
