package benchmark

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default parameter grid. The defaults reproduce the reference measurement:
// 12 combinations, k-major order.
var (
	DefaultKValues = []int{10, 100}
	DefaultNValues = []int{10, 100, 1000, 5000, 10_000, 100_000}
)

// DefaultSeed keeps label sequences identical run-for-run unless overridden.
const DefaultSeed int64 = 123

// Config defines the benchmark parameters passed from CLI
type Config struct {
	Seed         int64  // RNG seed for deterministic label generation
	KValues      []int  // label lengths to sweep, defaults to DefaultKValues
	NValues      []int  // batch sizes to sweep, defaults to DefaultNValues
	Repetitions  int    // fixed repetitions per trial, 0 selects the builtin policy
	WorkloadType string // workload to run inside the timed region
	BenchmarkID  string // optional label for this benchmark run
	OutputPath   string // optional CSV report destination
	ResultsDB    string // optional Pebble results database path
	LogFormat    string // "json" or "console", default is "console"
}

// RunBenchmark orchestrates the full benchmark lifecycle: it sweeps the
// parameter grid, prints one measurement line per cell to stdout in the form
// "k=<k>, n=<n>, <duration> ms", and returns the collected report in grid
// order.
func RunBenchmark(cfg Config) (*Report, error) {
	return runBenchmark(cfg, os.Stdout)
}

func runBenchmark(cfg Config, out io.Writer) (*Report, error) {
	setupLog(cfg)

	if len(cfg.KValues) == 0 {
		cfg.KValues = DefaultKValues
	}
	if len(cfg.NValues) == 0 {
		cfg.NValues = DefaultNValues
	}

	workload, err := CreateWorkload(WorkloadType(cfg.WorkloadType))
	if err != nil {
		return nil, err
	}

	initialLog(cfg, workload)

	var store *ResultStore
	if cfg.ResultsDB != "" {
		store, err = OpenResultStore(cfg.ResultsDB)
		if err != nil {
			return nil, err
		}
		defer store.Close()
	}

	// One generator for the whole run, seeded once before any generation and
	// never reseeded between trials.
	rng := rand.New(rand.NewSource(cfg.Seed))

	report := &Report{
		BenchmarkID: cfg.BenchmarkID,
		Workload:    workload.Name(),
		Seed:        cfg.Seed,
	}

	for _, k := range cfg.KValues {
		for _, n := range cfg.NValues {
			reps := cfg.Repetitions
			if reps <= 0 {
				reps = Repetitions(n)
			}

			ms, err := timeTrial(rng, workload, k, n, reps)
			if err != nil {
				return nil, fmt.Errorf("trial k=%d n=%d failed: %w", k, n, err)
			}

			fmt.Fprintf(out, "k=%d, n=%d, %v ms\n", k, n, ms)

			sample := Sample{K: k, N: n, Repetitions: reps, DurationMs: ms}
			report.Samples = append(report.Samples, sample)

			if store != nil {
				if err := store.Put(cfg.BenchmarkID, sample); err != nil {
					return nil, fmt.Errorf("failed to store sample: %w", err)
				}
			}
		}
	}

	if cfg.OutputPath != "" {
		if err := report.WriteCSV(cfg.OutputPath); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.OutputPath).Msg("Report written")
	}

	if store != nil {
		if err := store.Flush(); err != nil {
			log.Error().Err(err).Msg("Flush failed")
			return nil, err
		}
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Int("samples", len(report.Samples)).
		Msg("Benchmark complete")
	return report, nil
}

func initialLog(cfg Config, workload Workload) {
	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Str("workload", workload.Name()).
		Str("description", workload.GetDescription()).
		Int64("seed", cfg.Seed).
		Ints("k_values", cfg.KValues).
		Ints("n_values", cfg.NValues).
		Int("repetitions", cfg.Repetitions).
		Str("results_db", cfg.ResultsDB).
		Msg("Starting benchmark")
}

func setupLog(cfg Config) {
	// Logs always go to stderr: stdout carries the measurement lines.
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
