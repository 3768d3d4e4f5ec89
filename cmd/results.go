package cmd

import (
	"fmt"
	"log"

	"github.com/qbench/pauli-bench/benchmark"
	"github.com/spf13/cobra"
)

var (
	resultsDBPath string
	resultsRunID  string
)

// resultsCmd lists samples persisted by previous runs
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List benchmark samples stored in a results database",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := benchmark.OpenResultStoreReadOnly(resultsDBPath)
		if err != nil {
			log.Fatalf("Failed to open results database: %v", err)
		}
		defer store.Close()

		samples, err := store.List(resultsRunID)
		if err != nil {
			log.Fatalf("Failed to list results: %v", err)
		}
		for _, s := range samples {
			fmt.Printf("%s: k=%d, n=%d, %v ms (x%d)\n", s.BenchmarkID, s.K, s.N, s.DurationMs, s.Repetitions)
		}
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)

	resultsCmd.Flags().StringVar(&resultsDBPath, "results-db", "", "Path to the Pebble results database")
	resultsCmd.Flags().StringVar(&resultsRunID, "benchmark-id", "", "Only list samples recorded under this benchmark ID")
	resultsCmd.MarkFlagRequired("results-db")
}
