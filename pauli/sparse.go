package pauli

import (
	"fmt"
	"math/cmplx"
)

// CoeffTolerance is the magnitude below which a combined coefficient is
// treated as zero during simplification.
const CoeffTolerance = 1e-8

// SparsePauliOp is a linear combination of Pauli terms: a List plus one
// complex coefficient per term.
type SparsePauliOp struct {
	paulis List
	coeffs []complex128
}

// New builds an operator from a list and matching coefficients.
func New(list List, coeffs []complex128) (*SparsePauliOp, error) {
	if list.Len() != len(coeffs) {
		return nil, fmt.Errorf("got %d coefficients for %d terms", len(coeffs), list.Len())
	}
	return &SparsePauliOp{paulis: list, coeffs: coeffs}, nil
}

// FromLabels builds an operator with a unit coefficient for every label.
func FromLabels(labels []string) (*SparsePauliOp, error) {
	list, err := NewList(labels)
	if err != nil {
		return nil, err
	}
	coeffs := make([]complex128, list.Len())
	for i := range coeffs {
		coeffs[i] = 1
	}
	return &SparsePauliOp{paulis: list, coeffs: coeffs}, nil
}

// Len returns the number of terms.
func (op *SparsePauliOp) Len() int { return op.paulis.Len() }

// Dim returns the number of qubits the operator acts on.
func (op *SparsePauliOp) Dim() int { return op.paulis.Dim() }

// Paulis returns the term list.
func (op *SparsePauliOp) Paulis() List { return op.paulis }

// Coeffs returns the coefficients, one per term. The slice is shared with
// the operator and must not be mutated.
func (op *SparsePauliOp) Coeffs() []complex128 { return op.coeffs }

// Simplify returns a canonical form of the operator: duplicate terms are
// combined by summing their coefficients, and terms whose combined magnitude
// falls below CoeffTolerance are dropped. Surviving terms keep the order of
// their first occurrence. A fully cancelled operator simplifies to zero
// terms. The receiver is not mutated.
func (op *SparsePauliOp) Simplify() *SparsePauliOp {
	index := make(map[string]int, len(op.coeffs))
	order := make([]int, 0, len(op.coeffs))
	sums := make([]complex128, 0, len(op.coeffs))
	for i, p := range op.paulis.paulis {
		key := p.Key()
		if at, ok := index[key]; ok {
			sums[at] += op.coeffs[i]
			continue
		}
		index[key] = len(order)
		order = append(order, i)
		sums = append(sums, op.coeffs[i])
	}

	out := &SparsePauliOp{
		paulis: List{paulis: make([]Pauli, 0, len(order)), dim: op.paulis.dim},
		coeffs: make([]complex128, 0, len(order)),
	}
	for j, i := range order {
		if cmplx.Abs(sums[j]) < CoeffTolerance {
			continue
		}
		out.paulis.paulis = append(out.paulis.paulis, op.paulis.paulis[i])
		out.coeffs = append(out.coeffs, sums[j])
	}
	return out
}
