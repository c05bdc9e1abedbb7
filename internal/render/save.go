package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

// outputPerm matches what os.Create yields under the usual umask.
const outputPerm = 0o644

// AtomicSaver writes figures through a temp file in the destination
// directory and renames it over the target, so a failed run never leaves a
// partial file behind.
type AtomicSaver struct{}

var _ contract.Saver = AtomicSaver{}

// Save implements the contract.Saver interface.
func (AtomicSaver) Save(src io.WriterTo, path string) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = src.WriteTo(tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place at %s: %w", path, err)
	}
	return nil
}

// Render encodes the figure for format and saves it at path.
func Render(fig *Figure, format schema.ImageFormat, path string, saver contract.Saver) error {
	wt, err := fig.Encode(format)
	if err != nil {
		return err
	}
	return saver.Save(wt, path)
}
