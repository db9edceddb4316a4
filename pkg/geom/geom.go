// Package geom provides the small dense linear algebra needed to realize
// reflection groups geometrically: n-dimensional vectors (n = 3 or 4),
// reflection transforms, mirror normals derived from a Coxeter matrix, and
// the initial-vertex solve.
//
// Vectors are treated as row vectors; a transform is applied as v * M.
// Everything operates on plain slices sized at runtime so the same code
// serves polyhedra and polychora.
package geom

import (
	"errors"
	"math"

	"github.com/polytopia/wythoff/pkg/coxeter"
)

// ErrSingular is returned when a linear solve meets a (numerically)
// singular system, e.g. distances that do not determine a point.
var ErrSingular = errors.New("singular linear system")

// Vector is an n-dimensional row vector.
type Vector []float64

// Dot returns the scalar product with w. Lengths must match.
func (v Vector) Dot(w Vector) float64 {
	s := 0.0
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Matrix is a dense square matrix, row-major.
type Matrix [][]float64

// Apply returns the row vector v * m.
func (v Vector) Apply(m Matrix) Vector {
	out := make(Vector, len(v))
	for j := range out {
		s := 0.0
		for i := range v {
			s += v[i] * m[i][j]
		}
		out[j] = s
	}
	return out
}

// ReflectionMatrix builds the orthogonal transform reflecting through the
// hyperplane with unit normal n: x -> x - 2(x.n)n.
func ReflectionMatrix(n Vector) Matrix {
	dim := len(n)
	m := make(Matrix, dim)
	for i := 0; i < dim; i++ {
		m[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			m[i][j] = -2 * n[i] * n[j]
			if i == j {
				m[i][j]++
			}
		}
	}
	return m
}

// MirrorsFromCoxeterMatrix derives unit mirror normals whose pairwise dot
// products satisfy n_i . n_j = -cos(pi / m[i][j]). The normals are built
// triangularly (a Cholesky factorization of the Gram matrix), so mirror i
// has zero components beyond coordinate i.
//
// For a non-spherical matrix the Gram matrix is not positive definite and
// some components come out NaN; per the input contract no finiteness check
// is made here, and such inputs fail later during coset enumeration.
func MirrorsFromCoxeterMatrix(cm coxeter.Matrix) []Vector {
	dim := cm.Dim()
	gram := func(i, j int) float64 {
		if i == j {
			return 1
		}
		return -math.Cos(math.Pi / float64(cm.Order(i, j)))
	}

	normals := make([]Vector, dim)
	for i := range normals {
		normals[i] = make(Vector, dim)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < i; j++ {
			s := gram(i, j)
			for k := 0; k < j; k++ {
				s -= normals[i][k] * normals[j][k]
			}
			normals[i][j] = s / normals[j][j]
		}
		s := 1.0
		for k := 0; k < i; k++ {
			s -= normals[i][k] * normals[i][k]
		}
		normals[i][i] = math.Sqrt(s)
	}
	return normals
}

// InitialPointFromDistances solves for the point whose distance to mirror i
// is proportional to dist[i], then normalizes it onto the unit sphere.
func InitialPointFromDistances(normals []Vector, dist []float64) (Vector, error) {
	dim := len(normals)
	a := make(Matrix, dim)
	b := make([]float64, dim)
	for i := 0; i < dim; i++ {
		a[i] = append([]float64(nil), normals[i]...)
		b[i] = dist[i]
	}
	p, err := Solve(a, b)
	if err != nil {
		return nil, err
	}
	return Vector(p).Normalize(), nil
}

// Solve performs Gaussian elimination with partial pivoting on a*x = b.
// a and b are modified in place. Intended for the tiny systems of this
// package (n <= 4).
func Solve(a Matrix, b []float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		s := b[r]
		for c := r + 1; c < n; c++ {
			s -= a[r][c] * x[c]
		}
		x[r] = s / a[r][r]
	}
	return x, nil
}
