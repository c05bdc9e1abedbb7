package coords

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

// Schedule column names. The temperature column is looked up as "temp"
// first and "T" second.
const (
	TempColumn      = "temp"
	ShortTempColumn = "T"
	BestColumn      = "best_km"
	CurrentColumn   = "current_km"
)

// scheduleColumns holds the resolved header indices of the used columns.
type scheduleColumns struct {
	temp, best, current int
}

// ReadSchedule reads a delimited schedule table with a header row.
func ReadSchedule(path string, delimiter rune) (schema.Schedule, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sched, err := ParseSchedule(f, delimiter)
	if err != nil {
		return nil, withPath(err, path)
	}
	return sched, nil
}

// ParseSchedule parses a schedule table from r. All required columns are
// checked against the header before any row is read.
func ParseSchedule(r io.Reader, delimiter rune) (schema.Schedule, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		header = nil
	} else if err != nil {
		return nil, fromCSVError(err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var sched schema.Schedule
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fromCSVError(err)
		}
		line, _ := reader.FieldPos(0)
		sample, err := parseSample(line, record, header, cols)
		if err != nil {
			return nil, err
		}
		sched = append(sched, sample)
	}
	return sched, nil
}

// resolveColumns finds the used columns, reporting every missing one at once.
func resolveColumns(header []string) (scheduleColumns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	cols := scheduleColumns{temp: -1, best: -1, current: -1}
	var missing []string
	if i, ok := index[TempColumn]; ok {
		cols.temp = i
	} else if i, ok := index[ShortTempColumn]; ok {
		cols.temp = i
	} else {
		missing = append(missing, TempColumn+"/"+ShortTempColumn)
	}
	if i, ok := index[BestColumn]; ok {
		cols.best = i
	} else {
		missing = append(missing, BestColumn)
	}
	if i, ok := index[CurrentColumn]; ok {
		cols.current = i
	} else {
		missing = append(missing, CurrentColumn)
	}

	if len(missing) > 0 {
		return cols, &contract.SchemaError{Missing: missing}
	}
	return cols, nil
}

// parseSample converts the used fields of one record.
func parseSample(line int, record, header []string, cols scheduleColumns) (schema.ScheduleSample, error) {
	field := func(i int) (float64, error) {
		raw := strings.TrimSpace(record[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &contract.ParseError{
				Line: line,
				Msg:  fmt.Sprintf("invalid %s value '%s'", strings.TrimSpace(header[i]), raw),
				Err:  err,
			}
		}
		return v, nil
	}

	var (
		s   schema.ScheduleSample
		err error
	)
	if s.Temperature, err = field(cols.temp); err != nil {
		return s, err
	}
	if s.BestKm, err = field(cols.best); err != nil {
		return s, err
	}
	if s.CurrentKm, err = field(cols.current); err != nil {
		return s, err
	}
	return s, nil
}

// fromCSVError maps encoding/csv failures onto contract.ParseError.
func fromCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &contract.ParseError{
			Line: csvErr.Line,
			Msg:  "malformed row",
			Err:  csvErr.Err,
		}
	}
	return fmt.Errorf("error reading schedule: %w", err)
}
