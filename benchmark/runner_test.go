package benchmark

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrid(t *testing.T) {
	assert.Equal(t, []int{10, 100}, DefaultKValues)
	assert.Equal(t, []int{10, 100, 1000, 5000, 10_000, 100_000}, DefaultNValues)
	assert.Equal(t, 12, len(DefaultKValues)*len(DefaultNValues))
}

func TestRunBenchmarkGridOrder(t *testing.T) {
	cfg := Config{
		Seed:        123,
		KValues:     []int{2, 3},
		NValues:     []int{1, 2, 4},
		Repetitions: 1,
		BenchmarkID: "test",
	}
	report, err := RunBenchmark(cfg)
	require.NoError(t, err)
	require.Len(t, report.Samples, 6)

	want := [][2]int{{2, 1}, {2, 2}, {2, 4}, {3, 1}, {3, 2}, {3, 4}}
	for i, s := range report.Samples {
		assert.Equal(t, want[i][0], s.K, "sample %d", i)
		assert.Equal(t, want[i][1], s.N, "sample %d", i)
		assert.Equal(t, 1, s.Repetitions)
		assert.GreaterOrEqual(t, s.DurationMs, 0.0)
		assert.False(t, math.IsNaN(s.DurationMs))
		assert.False(t, math.IsInf(s.DurationMs, 0))
	}
	assert.Equal(t, "Simplify", report.Workload)
	assert.Equal(t, int64(123), report.Seed)
}

func TestRunBenchmarkMeasurementLines(t *testing.T) {
	cfg := Config{
		Seed:        123,
		KValues:     []int{2, 3},
		NValues:     []int{1, 2},
		Repetitions: 1,
		BenchmarkID: "stdout-test",
	}
	var out bytes.Buffer
	report, err := runBenchmark(cfg, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, len(report.Samples))

	lineFormat := regexp.MustCompile(`^k=(\d+), n=(\d+), (\S+) ms$`)
	for i, line := range lines {
		m := lineFormat.FindStringSubmatch(line)
		require.NotNil(t, m, "line %d: %q", i, line)
		assert.Equal(t, strconv.Itoa(report.Samples[i].K), m[1])
		assert.Equal(t, strconv.Itoa(report.Samples[i].N), m[2])

		ms, err := strconv.ParseFloat(m[3], 64)
		require.NoError(t, err, "line %d: %q", i, line)
		assert.GreaterOrEqual(t, ms, 0.0)
		assert.Equal(t, fmt.Sprintf("%v", report.Samples[i].DurationMs), m[3])
	}
}

func TestRunBenchmarkPolicyRepetitions(t *testing.T) {
	cfg := Config{
		Seed:    1,
		KValues: []int{2},
		NValues: []int{5, 10_000},
	}
	report, err := RunBenchmark(cfg)
	require.NoError(t, err)
	require.Len(t, report.Samples, 2)
	assert.Equal(t, 20, report.Samples[0].Repetitions)
	assert.Equal(t, 1, report.Samples[1].Repetitions)
}

func TestRunBenchmarkUnknownWorkload(t *testing.T) {
	_, err := RunBenchmark(Config{WorkloadType: "bogus"})
	require.Error(t, err)
}

func TestRunBenchmarkWritesCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	cfg := Config{
		Seed:        1,
		KValues:     []int{2},
		NValues:     []int{1, 2},
		Repetitions: 1,
		BenchmarkID: "csv-test",
		OutputPath:  out,
	}
	report, err := RunBenchmark(cfg)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(report.Samples)+1)
	assert.Equal(t, "benchmark_id", records[0][0])
	assert.Equal(t, "csv-test", records[1][0])
}

func TestRunBenchmarkPersistsSamples(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results")
	cfg := Config{
		Seed:        1,
		KValues:     []int{2},
		NValues:     []int{1, 2},
		Repetitions: 1,
		BenchmarkID: "persist-test",
		ResultsDB:   dbPath,
	}
	report, err := RunBenchmark(cfg)
	require.NoError(t, err)

	store, err := OpenResultStoreReadOnly(dbPath)
	require.NoError(t, err)
	defer store.Close()

	stored, err := store.List("persist-test")
	require.NoError(t, err)
	require.Len(t, stored, len(report.Samples))
	for i, s := range stored {
		assert.Equal(t, "persist-test", s.BenchmarkID)
		assert.Equal(t, report.Samples[i], s.Sample)
	}
}
