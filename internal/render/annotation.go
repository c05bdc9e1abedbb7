package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// annotationInset is the box offset from the lower-left corner of the data
// area, as a fraction of its size.
const annotationInset = 0.02

// annotation draws a text box pinned to the data area rather than to data
// coordinates, so it stays put whatever the axis ranges are.
type annotation struct {
	text    string
	style   text.Style
	fill    color.Color
	edge    draw.LineStyle
	padding vg.Length
}

// newAnnotation styles txt after the plot's legend font.
func newAnnotation(p *plot.Plot, txt string) *annotation {
	sty := p.Legend.TextStyle
	sty.Font = font.From(sty.Font, vg.Points(annotationFontPts))
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YBottom
	return &annotation{
		text:    txt,
		style:   sty,
		fill:    annotationFill,
		edge:    draw.LineStyle{Color: annotationEdge, Width: vg.Points(0.5)},
		padding: vg.Points(4),
	}
}

// Plot implements the plot.Plotter interface.
func (a *annotation) Plot(c draw.Canvas, _ *plot.Plot) {
	origin := vg.Point{
		X: c.Min.X + (c.Max.X-c.Min.X)*annotationInset,
		Y: c.Min.Y + (c.Max.Y-c.Min.Y)*annotationInset,
	}
	rect := a.style.Rectangle(a.text)
	size := rect.Size()
	corner := vg.Point{X: origin.X + size.X + 2*a.padding, Y: origin.Y + size.Y + 2*a.padding}

	box := []vg.Point{
		origin,
		{X: corner.X, Y: origin.Y},
		corner,
		{X: origin.X, Y: corner.Y},
		origin,
	}
	c.FillPolygon(a.fill, box[:4])
	c.StrokeLines(a.edge, box)

	at := vg.Point{X: origin.X + a.padding - rect.Min.X, Y: origin.Y + a.padding - rect.Min.Y}
	c.FillText(a.style, at, a.text)
}
