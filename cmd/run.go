package cmd

import (
	"log"

	"github.com/qbench/pauli-bench/benchmark"
	"github.com/spf13/cobra"
)

var (
	seed         int64
	kValues      []int
	nValues      []int
	repetitions  int
	workloadType string
	benchmarkID  string
	outputPath   string
	resultsDB    string
	logFormat    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Pauli operator benchmark grid",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := benchmark.Config{
			Seed:         seed,
			KValues:      kValues,
			NValues:      nValues,
			Repetitions:  repetitions,
			WorkloadType: workloadType,
			BenchmarkID:  benchmarkID,
			OutputPath:   outputPath,
			ResultsDB:    resultsDB,
			LogFormat:    logFormat,
		}
		if _, err := benchmark.RunBenchmark(cfg); err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&seed, "seed", benchmark.DefaultSeed, "Seed for deterministic label generation")
	runCmd.Flags().IntSliceVar(&kValues, "k-values", benchmark.DefaultKValues, "Label lengths (qubit counts) to sweep")
	runCmd.Flags().IntSliceVar(&nValues, "n-values", benchmark.DefaultNValues, "Batch sizes to sweep")
	runCmd.Flags().IntVar(&repetitions, "repetitions", 0, "Fixed repetitions per trial (0 = 20, or 1 when n >= 10000)")
	runCmd.Flags().StringVar(&workloadType, "workload", "simplify", "Workload type: 'simplify' or 'construct'")
	runCmd.Flags().StringVar(&benchmarkID, "benchmark-id", "default", "Optional benchmark ID tag for logs and stored results")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Optional CSV report destination")
	runCmd.Flags().StringVar(&resultsDB, "results-db", "", "Optional Pebble database path for persisting samples")
	runCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
}
