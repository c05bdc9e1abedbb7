// Package main provides a performance benchmarking tool for the routeplot CLI.
// It generates synthetic city, map and schedule files of increasing size,
// runs each command several times, treats the first successful run as cold
// and averages the rest as warm, and writes a CSV for documentation.
//
// Prerequisites:
// - routeplot binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated inputs and figures (default: a temp dir)
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the cold time and warm average of one command on one input size.
type BenchmarkResult struct {
	Cities   int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int
	Seed     int64
	MapRings int
}

// benchCase is one routeplot invocation.
type benchCase struct {
	name string
	args []string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	workDir := ""
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else {
		dir, err := os.MkdirTemp("", "routeplot-bench-")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		workDir = dir
	}

	config := BenchmarkConfig{
		WorkDir:  workDir,
		Timeout:  2 * time.Minute,
		Runs:     4,
		Sizes:    []int{100, 299, 1000, 10000},
		Seed:     42,
		MapRings: 400,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the routeplot binary and the work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("routeplot"); err != nil {
		return fmt.Errorf("routeplot binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("work dir %s is not usable: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks generates inputs for every size and times each command on them
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	rng := rand.New(rand.NewSource(config.Seed))

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d runs each, work dir %s\n",
		len(config.Sizes), config.Timeout, config.Runs, config.WorkDir)

	mapFile := filepath.Join(config.WorkDir, "map.dat")
	if err := writeMap(mapFile, config.MapRings, rng); err != nil {
		return nil, err
	}

	for _, n := range config.Sizes {
		fmt.Printf("Benchmarking %d cities\n", n)

		cities := filepath.Join(config.WorkDir, fmt.Sprintf("cities%d.dat", n))
		route := filepath.Join(config.WorkDir, fmt.Sprintf("route%d.dat", n))
		sched := filepath.Join(config.WorkDir, fmt.Sprintf("anneal%d.csv", n))
		if err := writeCities(cities, route, n, rng); err != nil {
			return nil, err
		}
		if err := writeSchedule(sched, n); err != nil {
			return nil, err
		}
		out := func(name string) string {
			return filepath.Join(config.WorkDir, fmt.Sprintf("%s%d", name, n))
		}

		cases := []benchCase{
			{"route-pdf", []string{"route", route, "--before", "90000", "--after", "40000", "--map", mapFile, "--out", out("route") + ".pdf"}},
			{"route-png", []string{"route", route, "--before", "90000", "--after", "40000", "--map", mapFile, "--xlim", "-130,-60", "--out", out("route") + ".png"}},
			{"world", []string{"world", cities, route, "--map", mapFile, "--out", out("world") + ".pdf"}},
			{"schedule", []string{"schedule", sched, "--out", out("an") + ".png"}},
			{"inspect", []string{"inspect", cities, route, "--output", "csv", "--output-file", out("inspect") + ".csv"}},
		}
		for _, c := range cases {
			results = append(results, runBenchmarkSuite(config, n, c))
		}
	}

	return results, nil
}

// runBenchmarkSuite times one case and formats the cold and warm results
func runBenchmarkSuite(config BenchmarkConfig, n int, c benchCase) BenchmarkResult {
	fmt.Printf("  %s (%d runs)\n", c.name, config.Runs)
	cold, warm := runBenchmark(config, c.args)

	coldTimeStr := "FAILED"
	if cold > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", cold)
	}
	warmAvg := "FAILED"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("    Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)
	return BenchmarkResult{Cities: n, Command: c.name, ColdTime: coldTimeStr, WarmTime: warmAvg}
}

// runBenchmark executes a routeplot command several times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("routeplot", append([]string{"--color", "no"}, args...)...)
		cmd.Dir = config.WorkDir

		done := make(chan bool, 1)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			} else if cmdErr != nil {
				fmt.Printf("    run %d failed: %v\n%s", run, cmdErr, output)
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates a file was written
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Wrote")
}

// writeCities writes n random cities in North America and a nearest-neighbor
// route through them, one 'lon lat' pair per line.
func writeCities(citiesPath, routePath string, n int, rng *rand.Rand) error {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{-125 + rng.Float64()*60, 25 + rng.Float64()*25}
	}
	if err := writePoints(citiesPath, pts); err != nil {
		return err
	}
	return writePoints(routePath, nearestNeighbor(pts))
}

// nearestNeighbor orders points greedily, which is cheap and looks like a tour.
func nearestNeighbor(pts [][2]float64) [][2]float64 {
	if len(pts) == 0 {
		return nil
	}
	used := make([]bool, len(pts))
	order := make([][2]float64, 0, len(pts))
	cur := 0
	used[0] = true
	order = append(order, pts[0])
	for len(order) < len(pts) {
		best, bestD := -1, math.Inf(1)
		for j, p := range pts {
			if used[j] {
				continue
			}
			dx, dy := p[0]-pts[cur][0], p[1]-pts[cur][1]
			if d := dx*dx + dy*dy; d < bestD {
				best, bestD = j, d
			}
		}
		used[best] = true
		order = append(order, pts[best])
		cur = best
	}
	return order
}

// writeMap writes rings of random jittered circles spread across the globe,
// separated by blank lines like a coastline file.
func writeMap(path string, rings int, rng *rand.Rand) error {
	var b strings.Builder
	b.WriteString("# synthetic backdrop\n")
	for range rings {
		cx, cy := -170+rng.Float64()*340, -80+rng.Float64()*160
		r := 0.5 + rng.Float64()*4
		for k := 0; k <= 24; k++ {
			a := 2 * math.Pi * float64(k%24) / 24
			jitter := 1 + 0.2*(rng.Float64()-0.5)
			fmt.Fprintf(&b, "%.4f %.4f\n", cx+r*jitter*math.Cos(a), cy+r*jitter*math.Sin(a))
		}
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeSchedule writes a geometric cooling schedule with n/10 samples.
func writeSchedule(path string, n int) error {
	samples := max(n/10, 10)
	var b strings.Builder
	b.WriteString("T,current_km,best_km\n")
	best := 100000.0
	for i := range samples {
		t := 1000 * math.Pow(0.95, float64(i))
		current := best * (1 + 0.1*math.Sin(float64(i)))
		best = math.Min(best, current*0.995)
		fmt.Fprintf(&b, "%.6g,%.2f,%.2f\n", t, current, best)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writePoints(path string, pts [][2]float64) error {
	var b strings.Builder
	for _, p := range pts {
		fmt.Fprintf(&b, "%.6f %.6f\n", p[0], p[1])
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("routeplot_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"cities", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{fmt.Sprint(result.Cities), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"route-pdf", "route-png", "world", "schedule", "inspect"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %6d cities: Cold: %s, Warm: %s\n", result.Cities, result.ColdTime, result.WarmTime)
			}
		}
	}
}
