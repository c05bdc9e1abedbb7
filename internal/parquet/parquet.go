// Package parquet exports inspect summaries to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/tspviz/routeplot/schema"
)

// SequenceRow is one inspected input file.
type SequenceRow struct {
	// Path is the input file as given on the command line
	Path string `parquet:"path,snappy"`

	// Kind is "points" or "polygons"
	Kind string `parquet:"kind,snappy,dict"`

	// Sequences is the number of paths or polygons read
	Sequences int32 `parquet:"sequences,snappy"`

	// Points is the total number of coordinates read
	Points int32 `parquet:"points,snappy"`

	// MinX, MaxX, MinY and MaxY are the bounding box of all coordinates
	MinX float64 `parquet:"min_x,snappy"`
	MaxX float64 `parquet:"max_x,snappy"`
	MinY float64 `parquet:"min_y,snappy"`
	MaxY float64 `parquet:"max_y,snappy"`

	// LengthKm is the haversine length, closed for tours and open for polygons
	LengthKm float64 `parquet:"length_km,snappy"`
}

// FromSummaries converts inspect summaries into Parquet rows.
func FromSummaries(summaries []schema.SequenceSummary) []SequenceRow {
	rows := make([]SequenceRow, len(summaries))
	for i, s := range summaries {
		rows[i] = SequenceRow{
			Path:      s.Path,
			Kind:      string(s.Kind),
			Sequences: int32(s.Sequences),
			Points:    int32(s.Points),
			MinX:      s.MinX,
			MaxX:      s.MaxX,
			MinY:      s.MinY,
			MaxY:      s.MaxY,
			LengthKm:  s.LengthKm,
		}
	}
	return rows
}

// WriteSequenceRowsParquet writes a slice of SequenceRow structs to a Parquet file.
func WriteSequenceRowsParquet(data []SequenceRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SequenceRow struct tags
	writer := parquet.NewGenericWriter[SequenceRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}
