// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "io"

// Saver persists a fully rendered figure at a path.
// This allows the orchestration logic to be tested without touching the disk.
type Saver interface {
	// Save writes everything src produces to path. Implementations must not
	// leave a partial file at path when src or the write fails.
	Save(src io.WriterTo, path string) error
}
