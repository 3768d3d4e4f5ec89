// Package pauli provides a sparse representation of multi-qubit Pauli
// operators built from label strings over the I/X/Y/Z alphabet.
package pauli

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Alphabet is the set of valid single-qubit Pauli characters.
const Alphabet = "IXYZ"

// Pauli is a single multi-qubit Pauli term in symplectic form: one z bit and
// one x bit per qubit, packed into uint64 words.
// Character mapping: I=(z0,x0), X=(0,1), Z=(1,0), Y=(1,1).
type Pauli struct {
	z, x []uint64
	dim  int
}

// ParseLabel parses a label string such as "IXYZ" into a Pauli. Position i in
// the label maps to qubit i.
func ParseLabel(label string) (Pauli, error) {
	if len(label) == 0 {
		return Pauli{}, fmt.Errorf("empty pauli label")
	}
	words := (len(label) + 63) / 64
	p := Pauli{z: make([]uint64, words), x: make([]uint64, words), dim: len(label)}
	for i := 0; i < len(label); i++ {
		word, bit := i/64, uint(i%64)
		switch label[i] {
		case 'I':
		case 'X':
			p.x[word] |= 1 << bit
		case 'Z':
			p.z[word] |= 1 << bit
		case 'Y':
			p.z[word] |= 1 << bit
			p.x[word] |= 1 << bit
		default:
			return Pauli{}, fmt.Errorf("invalid pauli character %q at position %d", label[i], i)
		}
	}
	return p, nil
}

// Dim returns the number of qubits this term acts on.
func (p Pauli) Dim() int { return p.dim }

// Label reconstructs the label string from the symplectic bits.
func (p Pauli) Label() string {
	var b strings.Builder
	b.Grow(p.dim)
	for i := 0; i < p.dim; i++ {
		word, bit := i/64, uint(i%64)
		z := p.z[word]>>bit&1 == 1
		x := p.x[word]>>bit&1 == 1
		switch {
		case z && x:
			b.WriteByte('Y')
		case x:
			b.WriteByte('X')
		case z:
			b.WriteByte('Z')
		default:
			b.WriteByte('I')
		}
	}
	return b.String()
}

// Key returns a compact comparable encoding of the symplectic bits. Two terms
// of the same width share a key iff they are the same Pauli.
func (p Pauli) Key() string {
	buf := make([]byte, 0, 16*len(p.z))
	for _, w := range p.z {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	for _, w := range p.x {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}
