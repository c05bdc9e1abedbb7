// Package render builds the route, world and schedule figures with gonum/plot
// and encodes them to the image format picked by the output file extension.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/tspviz/routeplot/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Options carries the per-invocation settings shared by all figures.
type Options struct {
	Title  string
	Width  float64 // Inches, 0 keeps the figure default
	Height float64 // Inches, 0 keeps the figure default
	DPI    float64 // Raster resolution, 0 keeps the figure default
	Limits schema.Limits
	Region schema.Region
	Before *float64
	After  *float64
}

// HasDistances reports whether the annotation box has both values to show.
func (o Options) HasDistances() bool {
	return o.Before != nil && o.After != nil
}

// Figure is a fully assembled plot together with its page geometry.
type Figure struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// newFigure creates a titled plot sized from opts or the given defaults.
func newFigure(widthIn, heightIn, dpi float64, opts Options) *Figure {
	if opts.Width > 0 {
		widthIn = opts.Width
	}
	if opts.Height > 0 {
		heightIn = opts.Height
	}
	if opts.DPI > 0 {
		dpi = opts.DPI
	}

	p := plot.New()
	p.Title.Text = opts.Title
	return &Figure{
		Plot:   p,
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
		DPI:    int(math.Round(dpi)),
	}
}

// Encode draws the figure onto a canvas for the format. The returned value
// holds the complete image in memory until WriteTo is called.
func (f *Figure) Encode(format schema.ImageFormat) (wt io.WriterTo, err error) {
	// gonum panics on degenerate geometry such as a non-positive log range.
	defer func() {
		if r := recover(); r != nil {
			wt, err = nil, fmt.Errorf("failed to draw figure: %v", r)
		}
	}()

	var img *vgimg.Canvas
	if format.IsRaster() {
		if f.DPI <= 0 {
			return nil, fmt.Errorf("dpi must be positive (received %d)", f.DPI)
		}
		img = vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	}

	var c vg.CanvasWriterTo
	switch format {
	case schema.PDFFormat:
		c = vgpdf.New(f.Width, f.Height)
	case schema.SVGFormat:
		c = vgsvg.New(f.Width, f.Height)
	case schema.EPSFormat:
		c = vgeps.New(f.Width, f.Height)
	case schema.PNGFormat:
		c = vgimg.PngCanvas{Canvas: img}
	case schema.JPEGFormat:
		c = vgimg.JpegCanvas{Canvas: img}
	case schema.TIFFFormat:
		c = vgimg.TiffCanvas{Canvas: img}
	default:
		return nil, fmt.Errorf("unsupported image format '%s'", format)
	}

	f.Plot.Draw(draw.New(c))
	return c, nil
}
