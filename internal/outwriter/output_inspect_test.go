package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

func sampleSummaries() []schema.SequenceSummary {
	return []schema.SequenceSummary{
		{Path: "cities.dat", Kind: schema.PointsKind, Sequences: 1, Points: 5, MinX: -122.42, MaxX: -73.99, MinY: 29.76, MaxY: 41.88, LengthKm: 9876.54},
		{Path: "world.dat", Kind: schema.PolygonsKind, Sequences: 2, Points: 4, MinX: -10, MaxX: 21, MinY: -5, MaxY: 31, LengthKm: 250.25},
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummaryCSV(&buf, sampleSummaries(), numberFormat{precision: 1}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "path,kind,sequences,points,min_x,max_x,min_y,max_y,length_km", lines[0])
	assert.Equal(t, "cities.dat,points,1,5,-122.4,-74.0,29.8,41.9,9876.5", lines[1])
	assert.Equal(t, "world.dat,polygons,2,4,-10.0,21.0,-5.0,31.0,250.2", lines[2])
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummaryTable(&buf, sampleSummaries(), numberFormat{precision: 2}, 40))

	out := buf.String()
	assert.Contains(t, out, "cities.dat")
	assert.Contains(t, out, "polygons")
	assert.Contains(t, out, "9876.54")
	assert.Contains(t, out, "Inspected 2 files (total points: 9)")
}

func TestWriteSequenceSummaries(t *testing.T) {
	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspect.json")
		cfg := &contract.Config{Output: schema.JSONOut, ReportFile: path, Precision: 1}
		require.NoError(t, WriteSequenceSummaries(sampleSummaries(), cfg))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var got []schema.SequenceSummary
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, sampleSummaries(), got)
	})

	t.Run("csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspect.csv")
		cfg := &contract.Config{Output: schema.CSVOut, ReportFile: path, Precision: 2}
		require.NoError(t, WriteSequenceSummaries(sampleSummaries(), cfg))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(string(content), "\n"))
	})

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspect.txt")
		cfg := &contract.Config{Output: schema.TextOut, ReportFile: path, Precision: 1}
		require.NoError(t, NewOutWriter().WriteSummaries(sampleSummaries(), cfg))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "world.dat")
	})

	t.Run("parquet file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspect.parquet")
		cfg := &contract.Config{Output: schema.ParquetOut, ReportFile: path, Precision: 1}
		require.NoError(t, WriteSequenceSummaries(sampleSummaries(), cfg))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("parquet bad path", func(t *testing.T) {
		cfg := &contract.Config{Output: schema.ParquetOut, ReportFile: filepath.Join(t.TempDir(), "x", "y.parquet"), Precision: 1}
		err := WriteSequenceSummaries(sampleSummaries(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error writing Parquet output")
	})
}
