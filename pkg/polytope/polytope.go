package polytope

import (
	"errors"

	"github.com/polytopia/wythoff/pkg/geom"
)

var (
	// ErrDuplicateEdge is returned by [Polytope.Validate] when an edge orbit
	// contains the same undirected vertex pair twice.
	ErrDuplicateEdge = errors.New("duplicate undirected edge")

	// ErrDuplicateFace is returned by [Polytope.Validate] when a face orbit
	// contains two cycles equal up to rotation and reversal.
	ErrDuplicateFace = errors.New("duplicate face cycle")

	// ErrIndexRange is returned by [Polytope.Validate] when an edge or face
	// references a vertex index outside the vertex list.
	ErrIndexRange = errors.New("vertex index out of range")
)

// EdgeOrbit is one symmetry class of edges. For the reflective construction
// Type is the generating mirror index; for the snub construction it indexes
// the generating rotation (0 = r, 1 = s, 2 = rs).
type EdgeOrbit struct {
	Type   int
	Pairs  [][2]int           // undirected vertex-index pairs, no duplicates
	Coords [][2]geom.Vector   // realized endpoints, parallel to Pairs
}

// FaceOrbit is one symmetry class of faces. Mirrors names the generating
// mirror pair; the snub construction reuses it to tag its three fixed base
// cycles ({0,1} = p-cycle, {1,2} = q-cycle, {0,2} = snub triangle).
type FaceOrbit struct {
	Mirrors [2]int
	Cycles  [][]int            // cyclic vertex-index sequences, unique up to rotation/reversal
	Coords  [][]geom.Vector    // realized polygons, parallel to Cycles
}

// Polytope is the finished geometric model: one coordinate per vertex-orbit
// coset and the typed edge and face orbits referencing those vertices by
// index. The aggregate owns all of its slices; builders hand it over and
// keep no mutable reference.
type Polytope struct {
	Dim      int
	Symbol   []int // upper-triangle Coxeter entries the model was built from
	Snub     bool
	Vertices []geom.Vector
	Edges    []EdgeOrbit
	Faces    []FaceOrbit
}

// NumVertices returns the total vertex count.
func (p *Polytope) NumVertices() int { return len(p.Vertices) }

// NumEdges returns the edge count summed over all orbits.
func (p *Polytope) NumEdges() int {
	n := 0
	for _, o := range p.Edges {
		n += len(o.Pairs)
	}
	return n
}

// NumFaces returns the face count summed over all orbits.
func (p *Polytope) NumFaces() int {
	n := 0
	for _, o := range p.Faces {
		n += len(o.Cycles)
	}
	return n
}

// Validate checks the structural invariants of the aggregate: every index in
// range, every edge pair undirected-unique within its orbit, and every face
// cycle unique up to rotation and reversal within its orbit. A polytope
// produced by Build always passes; Validate exists for data that crossed a
// serialization boundary.
func (p *Polytope) Validate() error {
	nv := len(p.Vertices)
	for _, o := range p.Edges {
		for i, e := range o.Pairs {
			if e[0] < 0 || e[0] >= nv || e[1] < 0 || e[1] >= nv {
				return ErrIndexRange
			}
			for _, f := range o.Pairs[:i] {
				if (f[0] == e[0] && f[1] == e[1]) || (f[0] == e[1] && f[1] == e[0]) {
					return ErrDuplicateEdge
				}
			}
		}
	}
	for _, o := range p.Faces {
		for i, c := range o.Cycles {
			for _, v := range c {
				if v < 0 || v >= nv {
					return ErrIndexRange
				}
			}
			for _, d := range o.Cycles[:i] {
				if sameCycle(c, d) {
					return ErrDuplicateFace
				}
			}
		}
	}
	return nil
}
