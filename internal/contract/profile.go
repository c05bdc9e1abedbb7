package contract

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// CPUPath is where the CPU profile of the run is written.
func (p ProfileConfig) CPUPath() string {
	return p.Prefix + ".cpu.prof"
}

// MemPath is where the heap profile is written when the run ends.
func (p ProfileConfig) MemPath() string {
	return p.Prefix + ".mem.prof"
}

// Profiler records a CPU profile for the whole run and a heap profile at
// the end. Messages go to stderr so stdout stays clean for the MCP server.
type Profiler struct {
	cfg *ProfileConfig
	cpu *os.File
}

// NewProfiler creates a profiler that reads its settings from cfg when started.
func NewProfiler(cfg *ProfileConfig) *Profiler {
	return &Profiler{cfg: cfg}
}

// Start begins CPU profiling. It does nothing when profiling is disabled
// or already running.
func (p *Profiler) Start() error {
	if !p.cfg.Enabled || p.cpu != nil {
		return nil
	}

	cpuFile, err := os.Create(p.cfg.CPUPath())
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		_ = cpuFile.Close()
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}
	p.cpu = cpuFile

	_, err = fmt.Fprintf(stderr, "Profiling enabled. CPU profile: %s, Memory profile: %s\n", p.cfg.CPUPath(), p.cfg.MemPath())
	return err
}

// Stop ends CPU profiling and writes the heap profile. It is safe to call
// when Start was never called.
func (p *Profiler) Stop() error {
	if p.cpu == nil {
		return nil
	}

	pprof.StopCPUProfile()
	cpuErr := p.cpu.Close()
	p.cpu = nil
	if cpuErr != nil {
		return fmt.Errorf("could not close CPU profile: %w", cpuErr)
	}

	memFile, err := os.Create(p.cfg.MemPath())
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}

	_, err = fmt.Fprintf(stderr, "Profiling complete. Use 'go tool pprof %s' to analyze.\n", p.cfg.CPUPath())
	return err
}
