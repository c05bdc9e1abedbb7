package contract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tspviz/routeplot/schema"
)

// Default values for configuration.
const (
	DefaultRouteOutput    = "cities.pdf"
	DefaultScheduleOutput = "an.png"
	DefaultMapFile        = "world_50m.dat"
	DefaultRouteTitle     = "Optimized TSP Path"
	DefaultWorldTitle     = "Plot of Salesman's Cities"
	DefaultScheduleTitle  = "Annealing Schedule (distance vs temperature)"
	DefaultDelimiter      = ","
	DefaultPrecision      = 1
	DerivedOutputExt      = ".pdf"
)

// Command identifies which subcommand a configuration is validated for.
type Command string

// All commands that need validated configuration.
const (
	RouteCommand    Command = "route"
	WorldCommand    Command = "world"
	ScheduleCommand Command = "schedule"
	InspectCommand  Command = "inspect"
	MCPCommand      Command = "mcp"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a single invocation.
// This struct is the "final, validated" config.
type Config struct {
	Command Command
	Inputs  []string // Positional input files, in order

	// --- Figure settings ---
	OutputFile string
	Format     schema.ImageFormat
	Title      string
	Before     *float64 // nil when not supplied
	After      *float64 // nil when not supplied
	MapFile    string
	Limits     schema.Limits
	Region     schema.Region
	Delimiter  rune
	Width      float64 // Figure width in inches (0 = figure default)
	Height     float64 // Figure height in inches (0 = figure default)
	DPI        float64 // Raster resolution (0 = figure default)

	// --- Inspect report settings ---
	Polygons   bool
	Output     schema.OutputMode
	ReportFile string
	Precision  int

	UseColors bool // Enable colored status lines
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from the command and positional args, so no tag
	Command Command
	Args    []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Color  string  `mapstructure:"color"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	DPI    float64 `mapstructure:"dpi"`

	// --- Fields shared by the figure commands ---
	Out       string `mapstructure:"out"`
	Title     string `mapstructure:"title"`
	Before    string `mapstructure:"before"`
	After     string `mapstructure:"after"`
	Map       string `mapstructure:"map"`
	XLim      string `mapstructure:"xlim"`
	YLim      string `mapstructure:"ylim"`
	World     bool   `mapstructure:"world"`
	Delimiter string `mapstructure:"delimiter"`

	// --- Fields from inspectCmd.Flags() ---
	Polygons   bool   `mapstructure:"polygons"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
}

// HasDistances reports whether both before and after distances were supplied.
func (c *Config) HasDistances() bool {
	return c.Before != nil && c.After != nil
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Command = input.Command
	if err := validateInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	switch cfg.Command {
	case RouteCommand, WorldCommand, ScheduleCommand:
		if err := processFigure(cfg, input); err != nil {
			return err
		}
	case InspectCommand:
		if err := processReport(cfg, input); err != nil {
			return err
		}
	}
	return nil
}

// validateInputs checks the positional argument count for the command.
func validateInputs(cfg *Config, input *ConfigRawInput) error {
	n := len(input.Args)
	switch cfg.Command {
	case RouteCommand:
		if n != 1 {
			return UsageErrorf("exactly one route file needed (received %d)", n)
		}
	case ScheduleCommand:
		if n != 1 {
			return UsageErrorf("exactly one schedule file needed (received %d)", n)
		}
	case WorldCommand:
		if n < 1 {
			return UsageErrorf("at least one input file needed")
		}
		if n > 2 {
			return UsageErrorf("at most two input files accepted (received %d)", n)
		}
	case InspectCommand:
		if n < 1 {
			return UsageErrorf("at least one input file needed")
		}
	}
	cfg.Inputs = append([]string(nil), input.Args...)
	return nil
}

// validateSimpleInputs processes fields shared by every command.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 || input.Height < 0 {
		return fmt.Errorf("figure size cannot be negative (received %gx%g)", input.Width, input.Height)
	}
	cfg.Width = input.Width
	cfg.Height = input.Height

	if input.DPI < 0 {
		return fmt.Errorf("dpi cannot be negative (received %g)", input.DPI)
	}
	cfg.DPI = input.DPI
	return nil
}

// processFigure handles output naming, format, distances, limits and region.
func processFigure(cfg *Config, input *ConfigRawInput) error {
	cfg.Title = input.Title
	if cfg.Title == "" {
		cfg.Title = defaultTitle(cfg.Command)
	}

	// --- Output path and format ---
	cfg.OutputFile = strings.TrimSpace(input.Out)
	if cfg.OutputFile == "" {
		switch cfg.Command {
		case RouteCommand:
			cfg.OutputFile = DefaultRouteOutput
		case ScheduleCommand:
			cfg.OutputFile = DefaultScheduleOutput
		default:
			cfg.OutputFile = DeriveOutputName(cfg.Inputs[0])
		}
	}
	format, err := FormatFromPath(cfg.OutputFile)
	if err != nil {
		return err
	}
	cfg.Format = format

	if cfg.Command == ScheduleCommand {
		d := input.Delimiter
		if d == "" {
			d = DefaultDelimiter
		}
		if d == `\t` {
			d = "\t"
		}
		if utf8.RuneCountInString(d) != 1 {
			return fmt.Errorf("delimiter must be a single character (received %q)", input.Delimiter)
		}
		cfg.Delimiter, _ = utf8.DecodeRuneInString(d)
		return nil
	}

	// --- Distances ---
	if cfg.Before, err = parseOptionalFloat("before", input.Before); err != nil {
		return err
	}
	if cfg.After, err = parseOptionalFloat("after", input.After); err != nil {
		return err
	}
	if cfg.Command == RouteCommand && !cfg.HasDistances() {
		return UsageErrorf("--before and --after are required")
	}

	// --- Backdrop, limits and region ---
	cfg.MapFile = strings.TrimSpace(input.Map)
	if cfg.Command == WorldCommand && cfg.MapFile == "" {
		cfg.MapFile = DefaultMapFile
	}
	if cfg.Limits.X, err = ParseRange("xlim", input.XLim); err != nil {
		return err
	}
	if cfg.Limits.Y, err = ParseRange("ylim", input.YLim); err != nil {
		return err
	}
	cfg.Region = schema.RegionalRegion
	if input.World {
		cfg.Region = schema.WorldRegion
	}
	return nil
}

// processReport validates the inspect output mode and destination.
func processReport(cfg *Config, input *ConfigRawInput) error {
	cfg.Polygons = input.Polygons
	cfg.ReportFile = strings.TrimSpace(input.OutputFile)

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.ReportFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	return nil
}

// defaultTitle returns the title a figure gets when none is configured.
func defaultTitle(cmd Command) string {
	switch cmd {
	case RouteCommand:
		return DefaultRouteTitle
	case ScheduleCommand:
		return DefaultScheduleTitle
	default:
		return DefaultWorldTitle
	}
}

// DeriveOutputName builds an output path from an input path: the base name
// up to its first '.', plus DerivedOutputExt, in the working directory.
func DeriveOutputName(input string) string {
	base := filepath.Base(input)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		base = "cities"
	}
	return base + DerivedOutputExt
}

// FormatFromPath resolves the image format from a file extension.
func FormatFromPath(path string) (schema.ImageFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("output file %q has no extension; use .pdf, .svg, .eps, .png, .jpg or .tif", path)
	}
	format, ok := schema.ImageFormats[ext]
	if !ok {
		return "", fmt.Errorf("unsupported output format '%s' for %q", ext, path)
	}
	return format, nil
}

// ParseRange parses "min,max" (or "min max") into a Range. An empty string
// yields nil, meaning the axis is not constrained.
func ParseRange(name, s string) (*schema.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid --%s '%s', expected 'min,max'", name, s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s minimum '%s': %w", name, parts[0], err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s maximum '%s': %w", name, parts[1], err)
	}
	if lo >= hi {
		return nil, fmt.Errorf("invalid --%s '%s', minimum must be less than maximum", name, s)
	}
	return &schema.Range{Min: lo, Max: hi}, nil
}

// parseOptionalFloat parses a flag value that may be absent.
func parseOptionalFloat(name, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value '%s': %w", name, s, err)
	}
	return &v, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
