// Package coxeter defines the Coxeter matrix, the integer input that encodes
// the mirror arrangement of a finite reflection group.
//
// A Coxeter matrix m is symmetric with m[i][i] = 1; the off-diagonal entry
// m[i][j] is the order of the dihedral group generated by mirrors i and j
// (2 means the mirrors commute). The package accepts the compact
// upper-triangle form used for Wythoff symbols: three integers for a
// polyhedron (3 mirrors) or six for a polychoron (4 mirrors).
package coxeter

import (
	"errors"
	"fmt"
)

var (
	// ErrSymbolArity is returned by [FromUpperTriangle] when the number of
	// upper-triangle entries is neither 3 (polyhedra) nor 6 (polychora).
	ErrSymbolArity = errors.New("symbol must have 3 or 6 entries")

	// ErrSymbolEntry is returned by [FromUpperTriangle] when an entry is
	// below 2. An order of 1 would collapse two mirrors into one, and 0 or
	// negative orders have no dihedral meaning.
	ErrSymbolEntry = errors.New("symbol entries must be >= 2")
)

// Matrix is a symmetric Coxeter matrix. The diagonal is always 1.
// No finiteness check is performed: a matrix describing a non-spherical
// group is accepted here and only fails later, when coset enumeration
// overflows its table limit.
type Matrix [][]int

// FromUpperTriangle builds a Coxeter matrix from its upper-triangle entries
// in row-major order: (m01, m02, m12) for 3 mirrors, or
// (m01, m02, m03, m12, m13, m23) for 4 mirrors.
func FromUpperTriangle(entries []int) (Matrix, error) {
	var dim int
	switch len(entries) {
	case 3:
		dim = 3
	case 6:
		dim = 4
	default:
		return nil, fmt.Errorf("%w: got %d", ErrSymbolArity, len(entries))
	}
	for _, e := range entries {
		if e < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrSymbolEntry, e)
		}
	}

	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]int, dim)
		m[i][i] = 1
	}
	k := 0
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			m[i][j] = entries[k]
			m[j][i] = entries[k]
			k++
		}
	}
	return m, nil
}

// Dim returns the number of mirrors (3 or 4).
func (m Matrix) Dim() int { return len(m) }

// Order returns the dihedral order m[i][j] for the mirror pair (i, j).
func (m Matrix) Order(i, j int) int { return m[i][j] }

// UpperTriangle returns the compact symbol form, inverse of [FromUpperTriangle].
func (m Matrix) UpperTriangle() []int {
	var out []int
	for i := 0; i < len(m); i++ {
		for j := i + 1; j < len(m); j++ {
			out = append(out, m[i][j])
		}
	}
	return out
}

// String renders the symbol form, e.g. "(4,2,3)".
func (m Matrix) String() string {
	s := "("
	for k, e := range m.UpperTriangle() {
		if k > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", e)
	}
	return s + ")"
}
