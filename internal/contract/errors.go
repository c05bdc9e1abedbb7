package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tspviz/routeplot/schema"
)

// Error kinds. Every failure that aborts a run matches exactly one of these
// through errors.Is.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrParse        = errors.New("parse error")
	ErrSchema       = errors.New("schema error")
	ErrEmptyInput   = schema.ErrEmptySequence
	ErrUsage        = errors.New("usage error")
)

// ParseError reports a malformed line in an input file.
type ParseError struct {
	Path string // File being read, empty for in-memory input
	Line int    // 1-based line number
	Msg  string
	Err  error // Underlying conversion failure, if any
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d: %s", e.Line, e.Msg)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the underlying conversion failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns missing from a table header.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	return fmt.Sprintf("%smissing required column(s): %s", prefix, strings.Join(e.Missing, ", "))
}

// Is lets errors.Is(err, ErrSchema) match any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// UsageErrorf builds an error that makes the CLI print the command usage.
func UsageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
