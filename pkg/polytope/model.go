package polytope

import (
	"github.com/polytopia/wythoff/pkg/coset"
	"github.com/polytopia/wythoff/pkg/coxeter"
	"github.com/polytopia/wythoff/pkg/geom"
)

// symmetryModel is the abstract symmetry group a builder enumerates over:
// its presentation, the stabilizer of the initial vertex, and the mapping
// from representative words to geometric transforms. The reflective and
// snub constructions are two implementations selected at construction time.
type symmetryModel interface {
	presentation() coset.Presentation
	vertexStabilizer() [][]int
	transform(v geom.Vector, word []int) geom.Vector
}

// reflectionModel is the full Coxeter group: one involution generator per
// mirror, relators (ρi ρj)^m[i][j].
type reflectionModel struct {
	cm          coxeter.Matrix
	reflections []geom.Matrix
	active      []bool
}

func (m *reflectionModel) presentation() coset.Presentation {
	dim := m.cm.Dim()
	var rels [][]int
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			rel := make([]int, 0, 2*m.cm.Order(i, j))
			for k := 0; k < m.cm.Order(i, j); k++ {
				rel = append(rel, i, j)
			}
			rels = append(rels, rel)
		}
	}
	return coset.Involutions(dim, rels)
}

// vertexStabilizer returns one single-letter word per inactive mirror: the
// reflections that fix the initial vertex.
func (m *reflectionModel) vertexStabilizer() [][]int {
	var gens [][]int
	for i, a := range m.active {
		if !a {
			gens = append(gens, []int{i})
		}
	}
	return gens
}

func (m *reflectionModel) transform(v geom.Vector, word []int) geom.Vector {
	for _, g := range word {
		v = v.Apply(m.reflections[g])
	}
	return v
}

// Letters of the rotation subgroup alphabet. The subgroup is generated by
// r = ρ0ρ1 and s = ρ1ρ2; the enumerator needs explicit inverse letters, and
// each letter maps to an ordered reflection pair when realizing geometry.
const (
	letterR    = 0 // r
	letterRInv = 1 // r⁻¹
	letterS    = 2 // s
	letterSInv = 3 // s⁻¹
)

// rotationModel is the orientation-preserving subgroup of a rank-3 Coxeter
// group, presented as <r, s | r^p = s^q = (rs)^h = 1> with p = m[0][1],
// q = m[1][2], h = m[0][2].
type rotationModel struct {
	cm          coxeter.Matrix
	reflections []geom.Matrix
}

func (m *rotationModel) presentation() coset.Presentation {
	p, q, h := m.cm.Order(0, 1), m.cm.Order(1, 2), m.cm.Order(0, 2)
	power := func(word []int, n int) []int {
		out := make([]int, 0, n*len(word))
		for k := 0; k < n; k++ {
			out = append(out, word...)
		}
		return out
	}
	return coset.Presentation{
		NumGens: 4,
		Inv:     []int{letterRInv, letterR, letterSInv, letterS},
		Relators: [][]int{
			power([]int{letterR}, p),
			power([]int{letterS}, q),
			power([]int{letterR, letterS}, h),
		},
	}
}

// vertexStabilizer is empty: the snub initial vertex lies on no mirror, so
// no rotation fixes it and the whole subgroup enumerates vertices.
func (m *rotationModel) vertexStabilizer() [][]int { return nil }

func (m *rotationModel) transform(v geom.Vector, word []int) geom.Vector {
	for _, g := range word {
		switch g {
		case letterR:
			v = v.Apply(m.reflections[0]).Apply(m.reflections[1])
		case letterRInv:
			v = v.Apply(m.reflections[1]).Apply(m.reflections[0])
		case letterS:
			v = v.Apply(m.reflections[1]).Apply(m.reflections[2])
		case letterSInv:
			v = v.Apply(m.reflections[2]).Apply(m.reflections[1])
		}
	}
	return v
}
