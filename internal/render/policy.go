package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tspviz/routeplot/schema"
	"gonum.org/v1/plot/vg"
)

// Size thresholds for the world figure. Both compare against the length of
// the closed path, which counts the first point twice.
const (
	InitialPathLimit = 300 // Initial path is drawn only below this
	DenseRouteLimit  = 300 // Optimized path is thinned above this
)

// Line widths and marker sizes, in points.
const (
	routeBackdropWidth = 0.6
	routeLineWidth     = 0.7
	routeMarkerArea    = 8.0

	worldBackdropWidth = 0.8
	initialPathWidth   = 1.0

	denseLineWidth    = 0.7
	denseMarkerSize   = 1.2
	sparseLineWidth   = 2.0
	sparseMarkerSize  = 3.0
	bestLineWidth     = 1.5
	currentLineWidth  = 0.7
	annotationFontPts = 10
)

// Figure defaults: size in inches and raster dpi.
const (
	routeWidthIn, routeHeightIn       = 9, 6
	worldWidthIn, worldHeightIn       = 10, 6
	scheduleWidthIn, scheduleHeightIn = 8, 5
	defaultDPI                        = 100
	scheduleDPI                       = 200
)

// Series colors.
var (
	primaryColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	secondaryColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	backdropGray   = color.Gray{Y: 128}
	backdropBlack  = color.Black
	initialColor   = color.NRGBA{R: 255, A: 89}
	optimizedColor = color.RGBA{B: 255, A: 255}
	annotationFill = color.NRGBA{R: 255, G: 255, B: 255, A: 217}
	annotationEdge = color.Gray{Y: 64}
)

// OptimizedStyle returns the line width and marker size, in points, for an
// optimized path of n points.
func OptimizedStyle(n int) (lineWidth, markerSize float64) {
	if n > DenseRouteLimit {
		return denseLineWidth, denseMarkerSize
	}
	return sparseLineWidth, sparseMarkerSize
}

// ShowInitial reports whether an initial path of n points is drawn.
func ShowInitial(n int) bool {
	return n < InitialPathLimit
}

// RegionLimits returns the axis ranges of a region preset.
func RegionLimits(region schema.Region) schema.Limits {
	b := region.Bound()
	return schema.Limits{
		X: &schema.Range{Min: b.Min.X(), Max: b.Max.X()},
		Y: &schema.Range{Min: b.Min.Y(), Max: b.Max.Y()},
	}
}

// AnnotationText formats the distance summary shown in the figure corner.
func AnnotationText(before, after float64) string {
	return fmt.Sprintf("Initial: %.1f km\nAfter SA: %.1f km", before, after)
}

// markerRadius converts a marker diameter in points to a glyph radius.
func markerRadius(size float64) vg.Length {
	return vg.Points(size / 2)
}

// areaRadius converts a scatter marker area in square points to a glyph radius.
func areaRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}
