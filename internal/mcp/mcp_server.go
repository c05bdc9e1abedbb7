// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tspviz/routeplot/internal/contract"
)

// NewMCPServer initializes and configures the routeplot MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, saver contract.Saver) *server.MCPServer {
	s := server.NewMCPServer(
		"Routeplot Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		saver:   saver,
	}

	// --- 1. Tool: plot_route ---
	s.AddTool(mcp.NewTool("plot_route",
		mcp.WithDescription("Draw an optimized route file as a closed loop with its cities, annotated with the distances before and after annealing."),
		mcp.WithString("route_file", mcp.Description("Path to the route file (one 'lon lat' pair per line)."), mcp.Required()),
		mcp.WithNumber("before", mcp.Description("Tour length in km before annealing."), mcp.Required()),
		mcp.WithNumber("after", mcp.Description("Tour length in km after annealing."), mcp.Required()),
		mcp.WithString("out", mcp.Description("Output path; the extension picks the format. Defaults to 'cities.pdf'.")),
		mcp.WithString("map_file", mcp.Description("Optional backdrop polygon file.")),
		mcp.WithString("title", mcp.Description("Figure title.")),
	), h.handlePlotRoute)

	// --- 2. Tool: plot_world ---
	s.AddTool(mcp.NewTool("plot_world",
		mcp.WithDescription("Draw the salesman's cities and an optional optimized route over a world map."),
		mcp.WithString("cities_file", mcp.Description("Path to the cities file."), mcp.Required()),
		mcp.WithString("route_file", mcp.Description("Optional optimized route file.")),
		mcp.WithBoolean("world", mcp.Description("Show the whole world instead of the regional window.")),
		mcp.WithString("out", mcp.Description("Output path. Defaults to the cities file name with a .pdf extension.")),
		mcp.WithString("map_file", mcp.Description("Backdrop polygon file. Defaults to 'world_50m.dat'.")),
		mcp.WithNumber("before", mcp.Description("Tour length in km before annealing.")),
		mcp.WithNumber("after", mcp.Description("Tour length in km after annealing.")),
	), h.handlePlotWorld)

	// --- 3. Tool: plot_schedule ---
	s.AddTool(mcp.NewTool("plot_schedule",
		mcp.WithDescription("Draw best and current distance against temperature from an annealing schedule table."),
		mcp.WithString("csv_file", mcp.Description("Path to the schedule table."), mcp.Required()),
		mcp.WithString("out", mcp.Description("Output path. Defaults to 'an.png'.")),
		mcp.WithString("title", mcp.Description("Figure title.")),
	), h.handlePlotSchedule)

	// --- 4. Tool: inspect_points ---
	s.AddTool(mcp.NewTool("inspect_points",
		mcp.WithDescription("Summarize a coordinate or polygon file: point count, bounds and haversine length in km."),
		mcp.WithString("path", mcp.Description("Path to the file to inspect."), mcp.Required()),
		mcp.WithBoolean("polygons", mcp.Description("Read the file as blank-line separated polygons.")),
	), h.handleInspectPoints)

	return s
}

// StartMCPServer starts the routeplot MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, saver contract.Saver) error {
	s := NewMCPServer(baseCfg, saver)
	return server.ServeStdio(s)
}
