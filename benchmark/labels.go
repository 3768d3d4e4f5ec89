package benchmark

import "math/rand"

// labelAlphabet is the single-qubit Pauli alphabet used for generated terms.
const labelAlphabet = "IXYZ"

// GenerateLabels produces n labels of length k, each character drawn
// uniformly from the IXYZ alphabet. The caller owns seeding: the runner
// seeds one generator per run and never reseeds between trials, so the full
// label stream is a function of the seed alone.
func GenerateLabels(rng *rand.Rand, k, n int) []string {
	labels := make([]string, 0, max(n, 0))
	buf := make([]byte, max(k, 0))
	for i := 0; i < n; i++ {
		for j := range buf {
			buf[j] = labelAlphabet[rng.Intn(len(labelAlphabet))]
		}
		labels = append(labels, string(buf))
	}
	return labels
}
