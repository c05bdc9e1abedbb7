package contract

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	SuccessColor = color.New(color.FgGreen)
	FatalColor   = color.New(color.FgRed, color.Bold)
	WarnColor    = color.New(color.FgYellow)
)

// Console streams and exit hook; tests swap them out.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// SetColorEnabled turns colored console output on or off for the whole process.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// LogWrote prints the success line naming the written file.
func LogWrote(path string) {
	_, _ = fmt.Fprintln(stdout, SuccessColor.Sprint("Wrote"), path)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	logProblem(FatalColor, "Fatal", msg, err)
	exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	logProblem(WarnColor, "Warn", msg, err)
}

func logProblem(c *color.Color, label, msg string, err error) {
	_, _ = fmt.Fprintf(stderr, "%s %s: %v\n", c.Sprint(label), msg, err)
}
