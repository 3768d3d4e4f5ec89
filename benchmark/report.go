package benchmark

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Sample is the measurement for a single (k, n) grid cell.
type Sample struct {
	K           int     `json:"k"`           // label length (qubit count)
	N           int     `json:"n"`           // batch size
	Repetitions int     `json:"repetitions"` // repetitions averaged over
	DurationMs  float64 `json:"duration_ms"` // mean wall-clock per repetition
}

// Report collects the samples of one benchmark run, in grid order.
type Report struct {
	BenchmarkID string   `json:"benchmark_id"`
	Workload    string   `json:"workload"`
	Seed        int64    `json:"seed"`
	Samples     []Sample `json:"samples"`
}

// WriteCSV writes the report to path, one row per sample plus a header.
func (r *Report) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"benchmark_id", "workload", "seed", "k", "n", "repetitions", "duration_ms"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, s := range r.Samples {
		record := []string{
			r.BenchmarkID,
			r.Workload,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(s.K),
			strconv.Itoa(s.N),
			strconv.Itoa(s.Repetitions),
			strconv.FormatFloat(s.DurationMs, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
