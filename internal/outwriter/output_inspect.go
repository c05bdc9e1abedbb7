package outwriter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/internal/parquet"
	"github.com/tspviz/routeplot/schema"
)

// summaryHeader names the CSV columns, which match the JSON and Parquet fields.
var summaryHeader = []string{
	"path",
	"kind",
	"sequences",
	"points",
	"min_x",
	"max_x",
	"min_y",
	"max_y",
	"length_km",
}

// WriteSequenceSummaries outputs inspect summaries, dispatching based on the output format configured.
func WriteSequenceSummaries(summaries []schema.SequenceSummary, cfg *contract.Config) error {
	nf := numberFormat{precision: cfg.Precision}

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReport(cfg.ReportFile, func(w io.Writer) error {
			return writeJSON(w, summaries)
		}); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReport(cfg.ReportFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summaries, nf)
		}); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSequenceRowsParquet(parquet.FromSummaries(summaries), cfg.ReportFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		contract.LogWrote(cfg.ReportFile)
	default:
		return writeReport(cfg.ReportFile, func(w io.Writer) error {
			return writeSummaryTable(w, summaries, nf, getMaxTablePathWidth())
		})
	}
	return nil
}

// writeSummaryCSV writes one CSV record per input file.
func writeSummaryCSV(w io.Writer, summaries []schema.SequenceSummary, nf numberFormat) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, nf.record(s, s.Path))
	}
	return writeCSV(w, summaryHeader, records)
}

// writeSummaryTable writes the human-readable table with a totals line.
func writeSummaryTable(w io.Writer, summaries []schema.SequenceSummary, nf numberFormat, pathWidth int) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Path", "Kind", "Seqs", "Points", "Lon Min", "Lon Max", "Lat Min", "Lat Max", "Length (km)"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var (
		data        [][]string
		totalPoints int
	)
	for _, s := range summaries {
		data = append(data, nf.record(s, contract.TruncatePath(s.Path, pathWidth)))
		totalPoints += s.Points
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Inspected %d files (total points: %d)\n", len(summaries), totalPoints)
	return err
}
