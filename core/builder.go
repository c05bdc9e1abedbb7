package core

import (
	"context"
	"fmt"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/internal/coords"
	"github.com/tspviz/routeplot/internal/render"
	"github.com/tspviz/routeplot/schema"
)

// FigureBuilder builds and saves a figure using a builder pattern.
// Every step returns the builder so failures stop the chain before
// anything is written.
type FigureBuilder struct {
	ctx      context.Context
	cfg      *contract.Config
	saver    contract.Saver
	route    schema.PointSequence
	cities   schema.PointSequence
	backdrop []schema.PointSequence
	schedule schema.Schedule
	fig      *render.Figure
}

// NewFigureBuilder creates a new builder for the configured command.
func NewFigureBuilder(ctx context.Context, cfg *contract.Config, saver contract.Saver) *FigureBuilder {
	return &FigureBuilder{
		ctx:   ctx,
		cfg:   cfg,
		saver: saver,
	}
}

// ReadInputs reads the positional input files of the command.
func (b *FigureBuilder) ReadInputs() (*FigureBuilder, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}
	if len(b.cfg.Inputs) == 0 {
		return nil, contract.UsageErrorf("no input file given")
	}

	var err error
	switch b.cfg.Command {
	case contract.RouteCommand:
		b.route, err = coords.ReadPoints(b.cfg.Inputs[0])
	case contract.WorldCommand:
		if b.cities, err = coords.ReadClosedPath(b.cfg.Inputs[0]); err != nil {
			return nil, err
		}
		if len(b.cfg.Inputs) > 1 {
			b.route, err = coords.ReadClosedPath(b.cfg.Inputs[1])
		}
	case contract.ScheduleCommand:
		b.schedule, err = coords.ReadSchedule(b.cfg.Inputs[0], b.cfg.Delimiter)
	default:
		err = fmt.Errorf("command %q does not draw a figure", b.cfg.Command)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ReadBackdrop reads the map polygons when a map file is configured.
func (b *FigureBuilder) ReadBackdrop() (*FigureBuilder, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}
	if b.cfg.MapFile == "" || b.cfg.Command == contract.ScheduleCommand {
		return b, nil
	}
	polys, err := coords.ReadPolygons(b.cfg.MapFile)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	b.backdrop = polys
	return b, nil
}

// BuildFigure assembles the plot from what was read.
func (b *FigureBuilder) BuildFigure() (*FigureBuilder, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}
	opts := RenderOptions(b.cfg)

	var err error
	switch b.cfg.Command {
	case contract.RouteCommand:
		b.fig, err = render.RouteFigure(b.route, b.backdrop, opts)
	case contract.WorldCommand:
		b.fig, err = render.WorldFigure(b.cities, b.route, b.backdrop, opts)
	case contract.ScheduleCommand:
		b.fig, err = render.ScheduleFigure(b.schedule, opts)
	default:
		err = fmt.Errorf("command %q does not draw a figure", b.cfg.Command)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Save encodes the figure and hands it to the saver, then reports the path.
func (b *FigureBuilder) Save() error {
	if b.fig == nil {
		return fmt.Errorf("no figure to save")
	}
	if err := b.ctx.Err(); err != nil {
		return err
	}
	if err := render.Render(b.fig, b.cfg.Format, b.cfg.OutputFile, b.saver); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.cfg.OutputFile, err)
	}
	if !shouldSuppressStatus(b.ctx) {
		contract.LogWrote(b.cfg.OutputFile)
	}
	return nil
}

// RenderOptions maps the validated configuration onto renderer options.
func RenderOptions(cfg *contract.Config) render.Options {
	return render.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		DPI:    cfg.DPI,
		Limits: cfg.Limits,
		Region: cfg.Region,
		Before: cfg.Before,
		After:  cfg.After,
	}
}
