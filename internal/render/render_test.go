package render

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tspviz/routeplot/schema"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

// smallOpts keeps raster output tiny so tests stay fast.
func smallOpts() Options {
	return Options{Title: "test", Width: 2, Height: 1.5, DPI: 40}
}

func float(v float64) *float64 {
	return &v
}

func sampleRoute() schema.PointSequence {
	return schema.PointSequence{{-122.4, 37.8}, {-104.9, 39.7}, {-87.6, 41.9}, {-74.0, 40.7}, {-95.4, 29.8}}
}

func sampleBackdrop() []schema.PointSequence {
	return []schema.PointSequence{
		{{-125, 48}, {-123, 40}, {-117, 32}},
		{{-80, 25}, {-81, 30}, {-76, 35}, {-70, 42}},
		{{10, 40}, {20, 50}},
	}
}

func encodeBytes(t *testing.T, fig *Figure, format schema.ImageFormat) []byte {
	t.Helper()
	wt, err := fig.Encode(format)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFigureEncodeFormats(t *testing.T) {
	tests := []struct {
		format schema.ImageFormat
		magic  []byte
	}{
		{format: schema.PDFFormat, magic: []byte("%PDF")},
		{format: schema.SVGFormat, magic: []byte("<?xml")},
		{format: schema.EPSFormat, magic: []byte("PS-Adobe")},
		{format: schema.PNGFormat, magic: []byte("\x89PNG")},
		{format: schema.JPEGFormat, magic: []byte("\xff\xd8")},
		{format: schema.TIFFFormat, magic: nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			fig, err := RouteFigure(sampleRoute(), nil, Options{
				Title: "route", Width: 2, Height: 1.5, DPI: 40,
				Before: float(100), After: float(80),
			})
			require.NoError(t, err)

			out := encodeBytes(t, fig, tt.format)
			assert.NotEmpty(t, out)
			if tt.magic != nil {
				head := out[:min(len(out), 64)]
				assert.True(t, bytes.Contains(head, tt.magic), "unexpected header %q", head)
			}
		})
	}
}

func TestFigureEncodeUnsupported(t *testing.T) {
	fig, err := RouteFigure(sampleRoute(), nil, smallOpts())
	require.NoError(t, err)

	_, err = fig.Encode("bmp")
	assert.Error(t, err)
}

func TestFigureSizeDefaults(t *testing.T) {
	fig, err := RouteFigure(sampleRoute(), nil, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 9*72, float64(fig.Width), 1e-9)
	assert.InDelta(t, 6*72, float64(fig.Height), 1e-9)
	assert.Equal(t, 100, fig.DPI)

	fig, err = WorldFigure(sampleRoute(), nil, nil, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 10*72, float64(fig.Width), 1e-9)
	assert.InDelta(t, 6*72, float64(fig.Height), 1e-9)

	fig, err = ScheduleFigure(schema.Schedule{{Temperature: 10, BestKm: 5, CurrentKm: 6}}, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 8*72, float64(fig.Width), 1e-9)
	assert.InDelta(t, 5*72, float64(fig.Height), 1e-9)
	assert.Equal(t, 200, fig.DPI)

	fig, err = ScheduleFigure(schema.Schedule{{Temperature: 10, BestKm: 5, CurrentKm: 6}}, Options{Width: 4, DPI: 72})
	require.NoError(t, err)
	assert.InDelta(t, 4*72, float64(fig.Width), 1e-9)
	assert.Equal(t, 72, fig.DPI)
}

func TestRouteFigure(t *testing.T) {
	t.Run("empty route", func(t *testing.T) {
		_, err := RouteFigure(nil, nil, smallOpts())
		assert.ErrorIs(t, err, schema.ErrEmptySequence)
	})

	t.Run("explicit limits", func(t *testing.T) {
		opts := smallOpts()
		opts.Limits = schema.Limits{X: &schema.Range{Min: -130, Max: -60}, Y: &schema.Range{Min: 20, Max: 55}}
		fig, err := RouteFigure(sampleRoute(), sampleBackdrop(), opts)
		require.NoError(t, err)
		assert.Equal(t, -130.0, fig.Plot.X.Min)
		assert.Equal(t, -60.0, fig.Plot.X.Max)
		assert.Equal(t, 20.0, fig.Plot.Y.Min)
		assert.Equal(t, 55.0, fig.Plot.Y.Max)
		assert.NotEmpty(t, encodeBytes(t, fig, schema.PNGFormat))
	})

	t.Run("autoscale includes backdrop", func(t *testing.T) {
		fig, err := RouteFigure(sampleRoute(), sampleBackdrop(), smallOpts())
		require.NoError(t, err)
		assert.Equal(t, -125.0, fig.Plot.X.Min)
		assert.Equal(t, 20.0, fig.Plot.X.Max)
	})

	t.Run("non finite coordinate", func(t *testing.T) {
		route := schema.PointSequence{{0, 0}, {math.Inf(1), 1}}
		_, err := RouteFigure(route, nil, smallOpts())
		assert.Error(t, err)
	})
}

func TestWorldFigure(t *testing.T) {
	closed, err := sampleRoute().Closed()
	require.NoError(t, err)

	t.Run("region preset", func(t *testing.T) {
		fig, err := WorldFigure(closed, closed, sampleBackdrop(), smallOpts())
		require.NoError(t, err)
		assert.Equal(t, -180.0, fig.Plot.X.Min)
		assert.Equal(t, -60.0, fig.Plot.X.Max)
		assert.Equal(t, 10.0, fig.Plot.Y.Min)
		assert.Equal(t, 75.0, fig.Plot.Y.Max)
		assert.NotEmpty(t, encodeBytes(t, fig, schema.PDFFormat))
	})

	t.Run("world preset", func(t *testing.T) {
		opts := smallOpts()
		opts.Region = schema.WorldRegion
		fig, err := WorldFigure(closed, nil, sampleBackdrop(), opts)
		require.NoError(t, err)
		assert.Equal(t, -180.0, fig.Plot.X.Min)
		assert.Equal(t, 180.0, fig.Plot.X.Max)
		assert.Equal(t, -90.0, fig.Plot.Y.Min)
		assert.Equal(t, 90.0, fig.Plot.Y.Max)
	})

	t.Run("explicit limits override one axis", func(t *testing.T) {
		opts := smallOpts()
		opts.Limits = schema.Limits{Y: &schema.Range{Min: 25, Max: 50}}
		fig, err := WorldFigure(closed, closed, nil, opts)
		require.NoError(t, err)
		assert.Equal(t, -180.0, fig.Plot.X.Min)
		assert.Equal(t, 25.0, fig.Plot.Y.Min)
		assert.Equal(t, 50.0, fig.Plot.Y.Max)
	})

	t.Run("large inputs with annotation", func(t *testing.T) {
		var big schema.PointSequence
		for i := 0; i < 400; i++ {
			big = append(big, schema.Point{-170 + float64(i)/4, 15 + float64(i%50)})
		}
		opts := smallOpts()
		opts.Before, opts.After = float(5000), float(4000)
		fig, err := WorldFigure(big, big, sampleBackdrop(), opts)
		require.NoError(t, err)
		assert.NotEmpty(t, encodeBytes(t, fig, schema.SVGFormat))
	})

	t.Run("empty cities", func(t *testing.T) {
		_, err := WorldFigure(nil, closed, nil, smallOpts())
		assert.ErrorIs(t, err, schema.ErrEmptySequence)
	})
}

// strokeStyle collects the line widths and glyph radii drawn in one color.
type strokeStyle struct {
	widths []vg.Length
	radii  []vg.Length
}

// recordStyles draws the figure onto a recording canvas and groups the
// line widths and circle radii by the color that was active.
func recordStyles(t *testing.T, fig *Figure) map[color.Color]*strokeStyle {
	t.Helper()
	rec := &recorder.Canvas{}
	fig.Plot.Draw(draw.NewCanvas(rec, fig.Width, fig.Height))

	styles := make(map[color.Color]*strokeStyle)
	var current color.Color
	style := func() *strokeStyle {
		if styles[current] == nil {
			styles[current] = &strokeStyle{}
		}
		return styles[current]
	}
	for _, action := range rec.Actions {
		switch a := action.(type) {
		case *recorder.SetColor:
			current = a.Color
		case *recorder.SetLineWidth:
			style().widths = append(style().widths, a.Width)
		case *recorder.Fill:
			for _, comp := range a.Path {
				if comp.Type == vg.ArcComp {
					style().radii = append(style().radii, comp.Radius)
				}
			}
		}
	}
	return styles
}

// gridPoints spreads n points inside the regional window.
func gridPoints(n int) schema.PointSequence {
	seq := make(schema.PointSequence, n)
	for i := range seq {
		seq[i] = schema.Point{-150 + float64(i%100)*0.8, 20 + float64(i/100)*10}
	}
	return seq
}

func TestWorldFigureInitialPathThreshold(t *testing.T) {
	tests := []struct {
		name   string
		cities int
		drawn  bool
	}{
		{name: "below limit", cities: 299, drawn: true},
		{name: "at limit", cities: 300, drawn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := WorldFigure(gridPoints(tt.cities), nil, nil, smallOpts())
			require.NoError(t, err)

			styles := recordStyles(t, fig)
			initial := styles[initialColor]
			if !tt.drawn {
				assert.Nil(t, initial, "initial path should not be drawn for %d points", tt.cities)
				return
			}
			require.NotNil(t, initial, "initial path should be drawn for %d points", tt.cities)
			assert.Contains(t, initial.widths, vg.Points(initialPathWidth))
		})
	}
}

func TestWorldFigureOptimizedStyle(t *testing.T) {
	tests := []struct {
		name   string
		points int
		width  vg.Length
		radius vg.Length
	}{
		{name: "sparse", points: 300, width: vg.Points(2.0), radius: vg.Points(1.5)},
		{name: "dense", points: 301, width: vg.Points(0.7), radius: vg.Points(0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := gridPoints(tt.points)
			fig, err := WorldFigure(route[:1], route, nil, smallOpts())
			require.NoError(t, err)

			optimized := recordStyles(t, fig)[optimizedColor]
			require.NotNil(t, optimized)
			require.NotEmpty(t, optimized.widths)
			for _, w := range optimized.widths {
				assert.Equal(t, tt.width, w)
			}
			require.NotEmpty(t, optimized.radii)
			for _, r := range optimized.radii {
				assert.InDelta(t, float64(tt.radius), float64(r), 1e-9)
			}
		})
	}
}

func TestFigureErrorsNameTheSeries(t *testing.T) {
	bad := schema.PointSequence{{math.Inf(1), 40}, {-100, 41}}

	_, err := RouteFigure(bad, nil, smallOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(schema.RouteRole)+":")

	_, err = RouteFigure(sampleRoute(), []schema.PointSequence{bad}, smallOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(schema.BackdropRole)+" polygon 1:")
}

func TestScheduleFigure(t *testing.T) {
	sched := schema.Schedule{
		{Temperature: 1000, BestKm: 50000, CurrentKm: 52000},
		{Temperature: 100, BestKm: 30000, CurrentKm: 31000},
		{Temperature: 10, BestKm: 20000, CurrentKm: 20500},
		{Temperature: 1, BestKm: 19000, CurrentKm: 19000},
	}

	t.Run("renders png", func(t *testing.T) {
		fig, err := ScheduleFigure(sched, smallOpts())
		require.NoError(t, err)
		assert.Equal(t, 1.0, fig.Plot.X.Min)
		assert.Equal(t, 1000.0, fig.Plot.X.Max)
		assert.NotEmpty(t, encodeBytes(t, fig, schema.PNGFormat))
	})

	t.Run("single sample", func(t *testing.T) {
		fig, err := ScheduleFigure(schema.Schedule{{Temperature: 0.5, BestKm: 1, CurrentKm: 2}}, smallOpts())
		require.NoError(t, err)
		assert.Equal(t, 0.25, fig.Plot.X.Min)
		assert.Equal(t, 1.0, fig.Plot.X.Max)
		assert.NotEmpty(t, encodeBytes(t, fig, schema.PNGFormat))
	})

	t.Run("non positive temperature", func(t *testing.T) {
		bad := append(schema.Schedule{}, sched...)
		bad = append(bad, schema.ScheduleSample{Temperature: 0, BestKm: 1, CurrentKm: 1})
		_, err := ScheduleFigure(bad, smallOpts())
		assert.ErrorIs(t, err, ErrNonPositiveTemperature)
	})

	t.Run("empty schedule", func(t *testing.T) {
		_, err := ScheduleFigure(nil, smallOpts())
		assert.ErrorIs(t, err, schema.ErrEmptySequence)
	})
}

// failingSource writes a few bytes and then fails.
type failingSource struct{}

func (failingSource) WriteTo(w io.Writer) (int64, error) {
	n, _ := w.Write([]byte("partial"))
	return int64(n), errors.New("disk full")
}

func TestAtomicSaver(t *testing.T) {
	fig, err := RouteFigure(sampleRoute(), nil, smallOpts())
	require.NoError(t, err)

	t.Run("writes new file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cities.pdf")
		require.NoError(t, Render(fig, schema.PDFFormat, path, AtomicSaver{}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
		assertOnlyFile(t, dir, "cities.pdf")
	})

	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "an.png")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		require.NoError(t, Render(fig, schema.PNGFormat, path, AtomicSaver{}))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("failed write leaves target untouched", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cities.pdf")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		err := AtomicSaver{}.Save(failingSource{}, path)
		require.Error(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
		assertOnlyFile(t, dir, "cities.pdf")
	})

	t.Run("failed write creates nothing", func(t *testing.T) {
		dir := t.TempDir()
		err := AtomicSaver{}.Save(failingSource{}, filepath.Join(dir, "cities.pdf"))
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unsupported format writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		err := Render(fig, "bmp", filepath.Join(dir, "cities.bmp"), AtomicSaver{})
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing directory", func(t *testing.T) {
		err := AtomicSaver{}.Save(failingSource{}, filepath.Join(t.TempDir(), "nope", "x.pdf"))
		assert.Error(t, err)
	})
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}
