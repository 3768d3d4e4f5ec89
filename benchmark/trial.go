package benchmark

import (
	"math/rand"
	"time"
)

// Repetitions returns how many times a trial repeats the timed operation.
// Expensive batches run once; cheap ones run 20 times to amortize timer
// noise while keeping total runtime bounded.
func Repetitions(n int) int {
	if n >= 10_000 {
		return 1
	}
	return 20
}

// timeTrial measures one (k, n) grid cell: it generates a label batch, runs
// the workload reps times in a single timed region, and returns the mean
// wall-clock duration per repetition in milliseconds. Label generation is
// outside the timed region.
func timeTrial(rng *rand.Rand, w Workload, k, n, reps int) (float64, error) {
	labels := GenerateLabels(rng, k, n)

	start := time.Now()
	for i := 0; i < reps; i++ {
		if err := w.Run(labels); err != nil {
			return 0, err
		}
	}
	elapsed := time.Since(start)

	return meanMs(elapsed, reps), nil
}

// meanMs converts a total elapsed duration into mean milliseconds per
// repetition, keeping full timer resolution rather than truncating to whole
// microseconds first.
func meanMs(elapsed time.Duration, reps int) float64 {
	return elapsed.Seconds() * 1000.0 / float64(reps)
}
