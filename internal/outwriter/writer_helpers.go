package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

// writeReport sends a report to stdout, or to path when one is given.
// A report written to a file is announced like a rendered figure.
func writeReport(path string, write func(io.Writer) error) (err error) {
	file, err := contract.SelectOutputFile(path)
	if err != nil {
		return err
	}
	if file == os.Stdout {
		return write(file)
	}

	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		if err == nil {
			contract.LogWrote(path)
		}
	}()
	return write(file)
}

// writeJSON encodes data as indented JSON.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSV writes the header and every record, then flushes.
func writeCSV(w io.Writer, header []string, records [][]string) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := csvWriter.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}
	return nil
}

// numberFormat renders report numbers with a fixed number of decimals.
type numberFormat struct {
	precision int
}

func (f numberFormat) float(v float64) string {
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

// record renders one summary in summaryHeader column order.
func (f numberFormat) record(s schema.SequenceSummary, path string) []string {
	return []string{
		path,
		string(s.Kind),
		strconv.Itoa(s.Sequences),
		strconv.Itoa(s.Points),
		f.float(s.MinX),
		f.float(s.MaxX),
		f.float(s.MinY),
		f.float(s.MaxY),
		f.float(s.LengthKm),
	}
}
