// Package core has the orchestration logic for every routeplot command.
package core

import (
	"context"
	"fmt"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/internal/coords"
	"github.com/tspviz/routeplot/internal/outwriter"
	"github.com/tspviz/routeplot/internal/tour"
	"github.com/tspviz/routeplot/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, saver contract.Saver) error

// ExecuteRoutePlot draws a single route file, optionally over a backdrop,
// and saves the figure at the configured output path.
func ExecuteRoutePlot(ctx context.Context, cfg *contract.Config, saver contract.Saver) error {
	return executeFigure(ctx, cfg, saver, contract.RouteCommand)
}

// ExecuteWorldPlot draws the cities file and an optional optimized route
// over the world backdrop inside the selected region.
func ExecuteWorldPlot(ctx context.Context, cfg *contract.Config, saver contract.Saver) error {
	return executeFigure(ctx, cfg, saver, contract.WorldCommand)
}

// ExecuteSchedulePlot draws the annealing schedule table.
func ExecuteSchedulePlot(ctx context.Context, cfg *contract.Config, saver contract.Saver) error {
	return executeFigure(ctx, cfg, saver, contract.ScheduleCommand)
}

// ExecuteInspect summarizes every input file and writes the report.
// The saver is unused because reports are streamed, not rendered.
func ExecuteInspect(ctx context.Context, cfg *contract.Config, _ contract.Saver) error {
	summaries, err := InspectFiles(ctx, cfg.Inputs, cfg.Polygons)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSummaries(summaries, cfg)
}

// InspectFiles reads each path as a point file, or as a polygon file when
// polygons is set, and returns one summary per path in order.
func InspectFiles(ctx context.Context, paths []string, polygons bool) ([]schema.SequenceSummary, error) {
	summaries := make([]schema.SequenceSummary, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var (
			seqs []schema.PointSequence
			kind = schema.PointsKind
		)
		if polygons {
			kind = schema.PolygonsKind
			polys, err := coords.ReadPolygons(path)
			if err != nil {
				return nil, err
			}
			seqs = polys
		} else {
			pts, err := coords.ReadPoints(path)
			if err != nil {
				return nil, err
			}
			if len(pts) == 0 {
				return nil, fmt.Errorf("%s: %w", path, contract.ErrEmptyInput)
			}
			seqs = []schema.PointSequence{pts}
		}
		summaries = append(summaries, tour.Summarize(path, kind, seqs))
	}
	return summaries, nil
}

// executeFigure runs the figure builder for one of the plot commands.
func executeFigure(ctx context.Context, cfg *contract.Config, saver contract.Saver, want contract.Command) error {
	if cfg.Command != want {
		return fmt.Errorf("%s plot cannot run a %q configuration", want, cfg.Command)
	}
	b, err := NewFigureBuilder(ctx, cfg, saver).ReadInputs()
	if err != nil {
		return err
	}
	if b, err = b.ReadBackdrop(); err != nil {
		return err
	}
	if b, err = b.BuildFigure(); err != nil {
		return err
	}
	return b.Save()
}
