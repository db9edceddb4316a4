package polytope

import (
	"fmt"

	"github.com/polytopia/wythoff/pkg/coset"
	"github.com/polytopia/wythoff/pkg/geom"
)

// faceKind tags the case analysis for a mirror pair (i, j). Whether the
// pair generates faces, and what the base cycle looks like, depends on
// which mirrors are active and whether their reflections commute.
type faceKind int

const (
	// faceNone: neither mirror active, or the sole active mirror commutes
	// with the other; the rotation fixes no face polygon.
	faceNone faceKind = iota
	// faceBoth: both mirrors active; the base face alternates edges of type
	// i and j, giving a 2m-gon stabilized by the rotation (i j).
	faceBoth
	// faceSingle: exactly one active, non-commuting pair; the base face is
	// an m-gon of one edge type, stabilized by the rotation and the active
	// reflection.
	faceSingle
)

// faceCase is the resolved variant for one mirror pair, carrying the data
// that differs between cases: which mirror contributes edges and which
// words generate the face stabilizer.
type faceCase struct {
	kind   faceKind
	active int // the active mirror for faceSingle; unused otherwise
}

func (b *Builder) classifyFace(i, j int) faceCase {
	switch {
	case b.active[i] && b.active[j]:
		return faceCase{kind: faceBoth}
	case b.active[i] && b.cm.Order(i, j) > 2:
		return faceCase{kind: faceSingle, active: i}
	case b.active[j] && b.cm.Order(i, j) > 2:
		return faceCase{kind: faceSingle, active: j}
	default:
		return faceCase{kind: faceNone}
	}
}

// buildFaces resolves the case for every unordered mirror pair, constructs
// the base cycle of vertex indices, enumerates cosets of the face
// stabilizer, and expands the base cycle through each representative word.
// Candidates matching a collected face up to rotation and reversal are
// duplicates of the same polygon reached from another coset and dropped.
func (b *Builder) buildFaces(pol *Polytope) error {
	pres := b.model.presentation()
	dim := b.cm.Dim()
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			fc := b.classifyFace(i, j)
			if fc.kind == faceNone {
				continue
			}

			m := b.cm.Order(i, j)
			var f0 []int
			var stab [][]int
			rot := []int{i, j}
			switch fc.kind {
			case faceBoth:
				stab = [][]int{rot}
				word := []int{}
				for k := 0; k < m; k++ {
					f0 = append(f0, b.vtable.Move(0, word))
					f0 = append(f0, b.vtable.Move(0, append([]int{j}, word...)))
					word = append(word, i, j)
				}
			case faceSingle:
				stab = [][]int{rot, {fc.active}}
				word := []int{}
				for k := 0; k < m; k++ {
					f0 = append(f0, b.vtable.Move(0, word))
					word = append(word, i, j)
				}
			}

			t, err := coset.Enumerate(pres, stab, b.limit)
			if err != nil {
				return fmt.Errorf("face orbit (%d,%d): %w", i, j, err)
			}
			orbit := FaceOrbit{Mirrors: [2]int{i, j}}
			b.expandFaceOrbit(&orbit, f0, t.Words())
			b.realizeFaces(&orbit, pol)
			pol.Faces = append(pol.Faces, orbit)
		}
	}
	return nil
}

// buildSnubFaces expands the three fixed base cycles of the chiral
// construction: the p-gon of powers of r, the q-gon of powers of s, and
// the triangle spanned by the two rotation images of the base vertex.
// No per-type coset table exists here; the vertex-orbit words themselves
// sweep each base cycle around.
func (b *Builder) buildSnubFaces(pol *Polytope) {
	p, q := b.cm.Order(0, 1), b.cm.Order(1, 2)

	cycleOf := func(letter, order int) []int {
		var f0 []int
		var word []int
		for k := 0; k < order; k++ {
			f0 = append(f0, b.vtable.Move(0, word))
			word = append(word, letter)
		}
		return f0
	}
	bases := []struct {
		mirrors [2]int
		f0      []int
	}{
		{[2]int{0, 1}, cycleOf(letterR, p)},
		{[2]int{1, 2}, cycleOf(letterS, q)},
		{[2]int{0, 2}, []int{0, b.vtable.Move(0, []int{letterS}), b.vtable.Move(0, []int{letterR, letterS})}},
	}

	for _, base := range bases {
		orbit := FaceOrbit{Mirrors: base.mirrors}
		b.expandFaceOrbit(&orbit, base.f0, b.vwords)
		b.realizeFaces(&orbit, pol)
		pol.Faces = append(pol.Faces, orbit)
	}
}

// expandFaceOrbit transforms every vertex of the base cycle through each
// word via the lent action table, collecting cycles that are new up to
// rotation and reversal.
func (b *Builder) expandFaceOrbit(o *FaceOrbit, f0 []int, words [][]int) {
	for _, w := range words {
		f := make([]int, len(f0))
		for k, v := range f0 {
			f[k] = b.vtable.Move(v, w)
		}
		if !hasCycle(o.Cycles, f) {
			o.Cycles = append(o.Cycles, f)
		}
	}
}

// realizeFaces fills coordinate polygons by lookup in the finished vertex
// list, mirroring realizeEdges.
func (b *Builder) realizeFaces(o *FaceOrbit, pol *Polytope) {
	o.Coords = make([][]geom.Vector, len(o.Cycles))
	for k, c := range o.Cycles {
		poly := make([]geom.Vector, len(c))
		for n, v := range c {
			poly[n] = pol.Vertices[v]
		}
		o.Coords[k] = poly
	}
}

// hasCycle reports whether cycle f matches any collected cycle up to
// rotation and direction reversal.
func hasCycle(cycles [][]int, f []int) bool {
	for _, c := range cycles {
		if sameCycle(c, f) {
			return true
		}
	}
	return false
}

// sameCycle reports whether a and b name the same cyclic sequence, in
// either direction.
func sameCycle(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		forward, backward := true, true
		for k := 0; k < n; k++ {
			if a[k] != b[(shift+k)%n] {
				forward = false
			}
			if a[k] != b[((shift-k)%n+n)%n] {
				backward = false
			}
			if !forward && !backward {
				break
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}
