package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tspviz/routeplot/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNonPositiveTemperature is returned when a schedule cannot be drawn on a
// logarithmic temperature axis.
var ErrNonPositiveTemperature = errors.New("temperature must be positive for a log scale")

// Axis labels.
const (
	longitudeLabel   = "longitude"
	latitudeLabel    = "latitude"
	temperatureLabel = "temperature"
	distanceLabel    = "distance (km)"
)

// RouteFigure draws an open route as a closed loop with its cities marked,
// over an optional backdrop.
func RouteFigure(route schema.PointSequence, backdrop []schema.PointSequence, opts Options) (*Figure, error) {
	closed, err := route.Closed()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schema.RouteRole, err)
	}

	fig := newFigure(routeWidthIn, routeHeightIn, defaultDPI, opts)
	p := fig.Plot
	p.X.Label.Text = longitudeLabel
	p.Y.Label.Text = latitudeLabel

	if len(backdrop) > 0 {
		if !opts.Limits.IsZero() {
			ix := newBackdropIndex(backdrop)
			backdrop = ix.Visible(ix.Window(opts.Limits))
		}
		if err := addBackdrop(p, backdrop, backdropGray, routeBackdropWidth); err != nil {
			return nil, err
		}
	}

	line, err := plotter.NewLine(closed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schema.RouteRole, err)
	}
	line.LineStyle = draw.LineStyle{Color: primaryColor, Width: vg.Points(routeLineWidth)}

	cities, err := plotter.NewScatter(route)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schema.RouteRole, err)
	}
	cities.GlyphStyle = draw.GlyphStyle{Color: secondaryColor, Radius: areaRadius(routeMarkerArea), Shape: draw.CircleGlyph{}}
	p.Add(line, cities)

	if opts.HasDistances() {
		p.Add(newAnnotation(p, AnnotationText(*opts.Before, *opts.After)))
	}

	applyLimits(p, opts.Limits)
	return fig, nil
}

// WorldFigure draws the cities and the optional optimized route, both closed
// paths, over a backdrop inside a region window.
func WorldFigure(cities, route schema.PointSequence, backdrop []schema.PointSequence, opts Options) (*Figure, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("cities: %w", schema.ErrEmptySequence)
	}

	fig := newFigure(worldWidthIn, worldHeightIn, defaultDPI, opts)
	p := fig.Plot
	p.X.Label.Text = longitudeLabel
	p.Y.Label.Text = latitudeLabel
	p.Legend.Top = true

	limits := RegionLimits(opts.Region)
	if opts.Limits.X != nil {
		limits.X = opts.Limits.X
	}
	if opts.Limits.Y != nil {
		limits.Y = opts.Limits.Y
	}

	if len(backdrop) > 0 {
		ix := newBackdropIndex(backdrop)
		visible := ix.Visible(ix.Window(limits))
		if err := addBackdrop(p, visible, backdropBlack, worldBackdropWidth); err != nil {
			return nil, err
		}
	}

	if ShowInitial(cities.Len()) {
		initial, err := plotter.NewLine(cities)
		if err != nil {
			return nil, fmt.Errorf("cities: %w", err)
		}
		initial.LineStyle = draw.LineStyle{Color: initialColor, Width: vg.Points(initialPathWidth)}
		p.Add(initial)
		p.Legend.Add(string(schema.InitialRole), initial)
	}

	if route.Len() > 0 {
		lineWidth, markerSize := OptimizedStyle(route.Len())
		line, marks, err := plotter.NewLinePoints(route)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", schema.RouteRole, err)
		}
		line.LineStyle = draw.LineStyle{Color: optimizedColor, Width: vg.Points(lineWidth)}
		marks.GlyphStyle = draw.GlyphStyle{Color: optimizedColor, Radius: markerRadius(markerSize), Shape: draw.CircleGlyph{}}
		p.Add(line, marks)
		p.Legend.Add(string(schema.OptimizedRole), line, marks)
	}

	if opts.HasDistances() {
		p.Add(newAnnotation(p, AnnotationText(*opts.Before, *opts.After)))
	}

	applyLimits(p, limits)
	return fig, nil
}

// ScheduleFigure draws best and current distance against temperature, with
// temperature on a logarithmic axis that decreases to the right.
func ScheduleFigure(sched schema.Schedule, opts Options) (*Figure, error) {
	if len(sched) == 0 {
		return nil, fmt.Errorf("schedule: %w", schema.ErrEmptySequence)
	}
	lo, hi := sched[0].Temperature, sched[0].Temperature
	for i, s := range sched {
		if s.Temperature <= 0 {
			return nil, fmt.Errorf("schedule row %d: %w (received %g)", i+1, ErrNonPositiveTemperature, s.Temperature)
		}
		lo, hi = min(lo, s.Temperature), max(hi, s.Temperature)
	}

	fig := newFigure(scheduleWidthIn, scheduleHeightIn, scheduleDPI, opts)
	p := fig.Plot
	p.X.Label.Text = temperatureLabel
	p.Y.Label.Text = distanceLabel
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LogScale{}}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	best, err := plotter.NewLine(sched.Best())
	if err != nil {
		return nil, fmt.Errorf("best: %w", err)
	}
	best.LineStyle = draw.LineStyle{Color: primaryColor, Width: vg.Points(bestLineWidth)}

	current, err := plotter.NewLine(sched.Current())
	if err != nil {
		return nil, fmt.Errorf("current: %w", err)
	}
	current.LineStyle = draw.LineStyle{Color: secondaryColor, Width: vg.Points(currentLineWidth)}

	p.Add(best, current)
	p.Legend.Add("best", best)
	p.Legend.Add("current", current)

	// A single temperature would otherwise be widened by ±1, which can cross zero.
	if lo == hi {
		p.X.Min, p.X.Max = lo/2, hi*2
	}
	return fig, nil
}

// addBackdrop draws each polygon as its own open polyline.
func addBackdrop(p *plot.Plot, polys []schema.PointSequence, c color.Color, width float64) error {
	for i, poly := range polys {
		line, err := plotter.NewLine(poly)
		if err != nil {
			return fmt.Errorf("%s polygon %d: %w", schema.BackdropRole, i+1, err)
		}
		line.LineStyle = draw.LineStyle{Color: c, Width: vg.Points(width)}
		p.Add(line)
	}
	return nil
}

// applyLimits pins the axes that have an explicit range.
func applyLimits(p *plot.Plot, limits schema.Limits) {
	if limits.X != nil {
		p.X.Min, p.X.Max = limits.X.Min, limits.X.Max
	}
	if limits.Y != nil {
		p.Y.Min, p.Y.Max = limits.Y.Min, limits.Y.Max
	}
}
