// Package outwriter has output and writer logic for inspect reports.
package outwriter

import (
	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

// OutWriter provides a unified interface for all report output.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummaries writes inspect summaries using the configured output format.
func (ow *OutWriter) WriteSummaries(summaries []schema.SequenceSummary, cfg *contract.Config) error {
	return WriteSequenceSummaries(summaries, cfg)
}
