package benchmark

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"
)

// ResultStore persists benchmark samples in a Pebble database so runs can be
// compared over time.
type ResultStore struct {
	db *pebble.DB
}

// OpenResultStore opens (or creates) a results database at path.
func OpenResultStore(path string) (*ResultStore, error) {
	return openResultStore(path, &pebble.Options{})
}

// OpenResultStoreReadOnly opens an existing results database for listing.
func OpenResultStoreReadOnly(path string) (*ResultStore, error) {
	return openResultStore(path, &pebble.Options{ReadOnly: true})
}

func openResultStore(path string, opts *pebble.Options) (*ResultStore, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// resultKey builds a key that sorts by benchmark ID, then k, then n.
// Numeric components are zero-padded so byte order matches numeric order.
func resultKey(id string, k, n int) []byte {
	return []byte(fmt.Sprintf("result/%s/k=%06d/n=%09d", id, k, n))
}

// Put stores one sample under the given benchmark ID, overwriting any sample
// recorded for the same (id, k, n).
func (s *ResultStore) Put(id string, sample Sample) error {
	value, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to encode sample: %w", err)
	}
	return s.db.Set(resultKey(id, sample.K, sample.N), value, pebble.NoSync)
}

// StoredSample is a persisted sample together with the benchmark ID it was
// recorded under.
type StoredSample struct {
	BenchmarkID string
	Sample
}

// List returns stored samples in key order. An empty id lists every run.
func (s *ResultStore) List(id string) ([]StoredSample, error) {
	prefix := "result/"
	if id != "" {
		prefix = "result/" + id + "/"
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixUpperBound([]byte(prefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create results iterator: %w", err)
	}
	defer iter.Close()

	var out []StoredSample
	for iter.First(); iter.Valid(); iter.Next() {
		var sample Sample
		if err := json.Unmarshal(iter.Value(), &sample); err != nil {
			return nil, fmt.Errorf("corrupt sample at key %q: %w", iter.Key(), err)
		}
		out = append(out, StoredSample{
			BenchmarkID: benchmarkIDFromKey(iter.Key()),
			Sample:      sample,
		})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

// Flush ensures all pending writes are persisted to storage.
func (s *ResultStore) Flush() error {
	return s.db.Flush()
}

// Close shuts down the underlying database.
func (s *ResultStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// prefixUpperBound returns the smallest key greater than every key with the
// given prefix.
func prefixUpperBound(prefix []byte) []byte {
	upper := append([]byte(nil), prefix...)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] < 0xff {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil // prefix is all 0xff, no upper bound
}

func benchmarkIDFromKey(key []byte) string {
	parts := strings.SplitN(string(key), "/", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}
