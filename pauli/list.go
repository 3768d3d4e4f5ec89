package pauli

import "fmt"

// List is an ordered sequence of Pauli terms, all acting on the same number
// of qubits.
type List struct {
	paulis []Pauli
	dim    int
}

// NewList parses a slice of labels into a List. All labels must be the same
// length and non-empty.
func NewList(labels []string) (List, error) {
	if len(labels) == 0 {
		return List{}, fmt.Errorf("pauli list needs at least one label")
	}
	l := List{paulis: make([]Pauli, 0, len(labels)), dim: len(labels[0])}
	for i, label := range labels {
		if len(label) != l.dim {
			return List{}, fmt.Errorf("label %d has length %d, want %d", i, len(label), l.dim)
		}
		p, err := ParseLabel(label)
		if err != nil {
			return List{}, fmt.Errorf("label %d: %w", i, err)
		}
		l.paulis = append(l.paulis, p)
	}
	return l, nil
}

// Len returns the number of terms.
func (l List) Len() int { return len(l.paulis) }

// Dim returns the number of qubits each term acts on.
func (l List) Dim() int { return l.dim }

// At returns the i-th term.
func (l List) At(i int) Pauli { return l.paulis[i] }

// Labels returns the label strings of all terms, in order.
func (l List) Labels() []string {
	labels := make([]string, len(l.paulis))
	for i, p := range l.paulis {
		labels[i] = p.Label()
	}
	return labels
}
