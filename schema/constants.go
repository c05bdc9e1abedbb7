package schema

// Custom string types for type safety.
type (
	// Role is the semantic role of a sequence inside a figure.
	Role string

	// Region selects one of the preset geographic windows.
	Region string

	// OutputMode represents the format of an inspect report.
	OutputMode string

	// ImageFormat is the encoding of a rendered figure.
	ImageFormat string

	// Kind tells how an input file was interpreted.
	Kind string
)

// All sequence roles.
const (
	RouteRole     Role = "route"
	BackdropRole  Role = "map backdrop"
	InitialRole   Role = "initial path"
	OptimizedRole Role = "optimized path"
)

// All region presets.
const (
	WorldRegion    Region = "world"
	RegionalRegion Region = "na" // default
)

// All report output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All image formats supported, keyed by file extension.
const (
	PDFFormat  ImageFormat = "pdf"
	SVGFormat  ImageFormat = "svg"
	EPSFormat  ImageFormat = "eps"
	PNGFormat  ImageFormat = "png"
	JPEGFormat ImageFormat = "jpg"
	TIFFFormat ImageFormat = "tif"
)

// All input kinds.
const (
	PointsKind   Kind = "points"
	PolygonsKind Kind = "polygons"
)

// ValidOutputModes lists all valid report output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ImageFormats maps lower-case file extensions (without the dot) to formats.
var ImageFormats = map[string]ImageFormat{
	"pdf":  PDFFormat,
	"svg":  SVGFormat,
	"eps":  EPSFormat,
	"png":  PNGFormat,
	"jpg":  JPEGFormat,
	"jpeg": JPEGFormat,
	"tif":  TIFFFormat,
	"tiff": TIFFFormat,
}

// IsRaster reports whether the format is pixel based and honors a DPI setting.
func (f ImageFormat) IsRaster() bool {
	switch f {
	case PNGFormat, JPEGFormat, TIFFFormat:
		return true
	default:
		return false
	}
}
