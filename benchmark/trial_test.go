package benchmark

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepetitionsPolicy(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{10, 20},
		{100, 20},
		{1000, 20},
		{5000, 20},
		{9999, 20},
		{10_000, 1},
		{100_000, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Repetitions(c.n), "n=%d", c.n)
	}
}

func TestTimeTrial(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	workload, err := CreateWorkload(WorkloadSimplify)
	require.NoError(t, err)

	ms, err := timeTrial(rng, workload, 4, 20, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 0.0)
	assert.False(t, math.IsInf(ms, 0))
	assert.False(t, math.IsNaN(ms))
}

func TestMeanMsKeepsSubMicrosecondResolution(t *testing.T) {
	// Truncating to whole microseconds before averaging would report 0.001
	// here instead of 0.0015.
	assert.InDelta(t, 0.0015, meanMs(1500*time.Nanosecond, 1), 1e-12)
	assert.InDelta(t, 0.15, meanMs(3*time.Millisecond, 20), 1e-12)
	assert.InDelta(t, 1250.0, meanMs(1250*time.Millisecond, 1), 1e-9)
}

func TestTimeTrialPropagatesWorkloadError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	workload, err := CreateWorkload(WorkloadConstruct)
	require.NoError(t, err)

	// n=0 produces an empty batch, which the constructor rejects.
	_, err = timeTrial(rng, workload, 4, 0, 1)
	require.Error(t, err)
}
