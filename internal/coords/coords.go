// Package coords reads the solver's text outputs: coordinate files, blank-line
// separated polygon files and the annealing schedule table.
package coords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

// commentMarker starts a line that readers ignore.
const commentMarker = "#"

// maxLineBytes bounds a single input line. Backdrop files can carry very long
// coordinate lines when exported from GIS tools.
const maxLineBytes = 1 << 20

// ReadPoints reads a coordinate file into an open sequence.
func ReadPoints(path string) (schema.PointSequence, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	seq, err := ParsePoints(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return seq, nil
}

// ReadClosedPath reads a coordinate file and closes the path by appending
// its first point.
func ReadClosedPath(path string) (schema.PointSequence, error) {
	seq, err := ReadPoints(path)
	if err != nil {
		return nil, err
	}
	closed, err := seq.Closed()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return closed, nil
}

// ReadPolygons reads a polygon file into one sequence per blank-line
// separated group.
func ReadPolygons(path string) ([]schema.PointSequence, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	polys, err := ParsePolygons(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return polys, nil
}

// ParsePoints parses coordinate lines from r.
func ParsePoints(r io.Reader) (schema.PointSequence, error) {
	var seq schema.PointSequence
	err := scanLines(r, func(lineNo int, line string) error {
		if isSkippable(line) {
			return nil
		}
		p, err := parsePoint(lineNo, line)
		if err != nil {
			return err
		}
		seq = append(seq, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// ParsePolygons parses polygon groups from r. A blank line ends the current
// group; comment lines are skipped without ending it.
func ParsePolygons(r io.Reader) ([]schema.PointSequence, error) {
	var (
		polys   []schema.PointSequence
		current schema.PointSequence
	)
	flush := func() {
		if len(current) > 0 {
			polys = append(polys, current)
			current = nil
		}
	}
	err := scanLines(r, func(lineNo int, line string) error {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			return nil
		}
		if strings.HasPrefix(trimmed, commentMarker) {
			return nil
		}
		p, err := parsePoint(lineNo, trimmed)
		if err != nil {
			return err
		}
		current = append(current, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return polys, nil
}

// scanLines calls fn with each line of r and its 1-based number.
func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

// isSkippable reports whether a line is blank or a comment.
func isSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, commentMarker)
}

// parsePoint reads the first two whitespace-separated tokens of a line.
// Extra tokens are ignored.
func parsePoint(lineNo int, line string) (schema.Point, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return schema.Point{}, &contract.ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("expected two values, found %d", len(fields)),
		}
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return schema.Point{}, &contract.ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("invalid x value '%s'", fields[0]),
			Err:  err,
		}
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return schema.Point{}, &contract.ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("invalid y value '%s'", fields[1]),
			Err:  err,
		}
	}
	return schema.Point{x, y}, nil
}

// openInput opens path, mapping a missing file to contract.ErrFileNotFound.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", contract.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// withPath attaches the file path to parse errors raised by the io.Reader
// variants, and prefixes anything else with it.
func withPath(err error, path string) error {
	var pe *contract.ParseError
	if errors.As(err, &pe) {
		pe.Path = path
		return pe
	}
	var se *contract.SchemaError
	if errors.As(err, &se) {
		se.Path = path
		return se
	}
	return fmt.Errorf("%s: %w", path, err)
}
