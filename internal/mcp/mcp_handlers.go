package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tspviz/routeplot/core"
	"github.com/tspviz/routeplot/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	saver   contract.Saver
}

// rawInput starts a raw configuration from the server's base settings.
func (h *toolHandler) rawInput(cmd contract.Command, args ...string) *contract.ConfigRawInput {
	input := &contract.ConfigRawInput{
		Command:   cmd,
		Color:     "no",
		Precision: contract.DefaultPrecision,
	}
	for _, a := range args {
		if a != "" {
			input.Args = append(input.Args, a)
		}
	}
	if h.baseCfg != nil {
		input.Width = h.baseCfg.Width
		input.Height = h.baseCfg.Height
		input.DPI = h.baseCfg.DPI
	}
	return input
}

// runFigure validates input and draws the figure with the given executor.
func (h *toolHandler) runFigure(ctx context.Context, input *contract.ConfigRawInput, exec core.ExecutorFunc) (*mcp.CallToolResult, error) {
	cfg := &contract.Config{}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if err := exec(core.WithSuppressStatus(ctx), cfg, h.saver); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("plot failed: %v", err)), nil
	}
	return mcp.NewToolResultText("Wrote " + cfg.OutputFile), nil
}

func (h *toolHandler) handlePlotRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := h.rawInput(contract.RouteCommand, request.GetString("route_file", ""))
	input.Out = request.GetString("out", "")
	input.Map = request.GetString("map_file", "")
	input.Title = request.GetString("title", "")
	input.Before = numberArg(request, "before")
	input.After = numberArg(request, "after")
	return h.runFigure(ctx, input, core.ExecuteRoutePlot)
}

func (h *toolHandler) handlePlotWorld(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := h.rawInput(contract.WorldCommand,
		request.GetString("cities_file", ""),
		request.GetString("route_file", ""))
	input.World = request.GetBool("world", false)
	input.Out = request.GetString("out", "")
	input.Map = request.GetString("map_file", "")
	input.Before = numberArg(request, "before")
	input.After = numberArg(request, "after")
	return h.runFigure(ctx, input, core.ExecuteWorldPlot)
}

func (h *toolHandler) handlePlotSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := h.rawInput(contract.ScheduleCommand, request.GetString("csv_file", ""))
	input.Out = request.GetString("out", "")
	input.Title = request.GetString("title", "")
	return h.runFigure(ctx, input, core.ExecuteSchedulePlot)
}

func (h *toolHandler) handleInspectPoints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := h.rawInput(contract.InspectCommand, request.GetString("path", ""))
	input.Polygons = request.GetBool("polygons", false)

	cfg := &contract.Config{}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	summaries, err := core.InspectFiles(ctx, cfg.Inputs, cfg.Polygons)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inspect failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode summaries: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// numberArg returns a numeric argument as text for the raw config, or an
// empty string when the caller did not supply it. Strings pass through so
// validation reports them as given.
func numberArg(request mcp.CallToolRequest, key string) string {
	val, ok := request.GetArguments()[key]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	f, err := request.RequireFloat(key)
	if err != nil {
		return fmt.Sprint(val)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
