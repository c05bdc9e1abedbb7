// main is the entry point for the routeplot CLI.
package main

import (
	"errors"

	"github.com/tspviz/routeplot/cmd"
	"github.com/tspviz/routeplot/internal/contract"
)

func main() {
	c, err := cmd.ExecuteC()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err == nil {
		return
	}

	name := "routeplot"
	if c != nil {
		name = c.Name()
		if errors.Is(err, contract.ErrUsage) {
			_ = c.Usage()
		}
	}
	contract.LogFatal("Cannot run "+name, err)
}
