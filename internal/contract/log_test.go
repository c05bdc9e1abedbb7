package contract

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// captureConsole redirects the console streams and the exit hook for one test.
func captureConsole(t *testing.T) (out, errOut *bytes.Buffer, code *int) {
	t.Helper()
	out, errOut, code = &bytes.Buffer{}, &bytes.Buffer{}, new(int)
	*code = -1

	prevColor := color.NoColor
	color.NoColor = true
	stdout, stderr = out, errOut
	exit = func(c int) { *code = c }
	t.Cleanup(func() {
		color.NoColor = prevColor
		stdout, stderr = io.Writer(os.Stdout), io.Writer(os.Stderr)
		exit = os.Exit
	})
	return out, errOut, code
}

func TestSetColorEnabled(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	SetColorEnabled(false)
	assert.True(t, color.NoColor)
	assert.Equal(t, "Wrote", SuccessColor.Sprint("Wrote"))

	SetColorEnabled(true)
	assert.False(t, color.NoColor)
}

func TestLogWrote(t *testing.T) {
	out, errOut, _ := captureConsole(t)
	LogWrote("cities.pdf")
	assert.Equal(t, "Wrote cities.pdf\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestLogFatal(t *testing.T) {
	out, errOut, code := captureConsole(t)
	LogFatal("Cannot plot route", errors.New("route.dat:3: invalid x value 'abc'"))
	assert.Empty(t, out.String())
	assert.Equal(t, "Fatal Cannot plot route: route.dat:3: invalid x value 'abc'\n", errOut.String())
	assert.Equal(t, 1, *code)
}

func TestLogWarn(t *testing.T) {
	_, errOut, code := captureConsole(t)
	LogWarn("Cannot stop profiling", errors.New("disk full"))
	assert.Equal(t, "Warn Cannot stop profiling: disk full\n", errOut.String())
	assert.Equal(t, -1, *code)
}
