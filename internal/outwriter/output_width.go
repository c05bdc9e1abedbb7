package outwriter

import (
	"os"

	"golang.org/x/term"
)

// Fallback terminal width when stdout is not a terminal.
const defaultTermWidth = 80

// getMaxTablePathWidth calculates the maximum width for file paths in table
// output based on terminal width.
func getMaxTablePathWidth() int {
	termWidth := defaultTermWidth
	if detected, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && detected > 0 {
		termWidth = detected
	}
	return pathWidthFor(termWidth)
}

// pathWidthFor returns the path column width that fits a terminal.
func pathWidthFor(termWidth int) int {
	// Kind + Seqs + Points + four bounds + Length, with borders/padding
	baseWidth := 95

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 70 {
		// Maximum path width to prevent overly long paths
		return 70
	}
	return available
}
