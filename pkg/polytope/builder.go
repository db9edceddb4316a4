package polytope

import (
	"errors"
	"fmt"

	"github.com/polytopia/wythoff/pkg/coset"
	"github.com/polytopia/wythoff/pkg/coxeter"
	"github.com/polytopia/wythoff/pkg/geom"
)

var (
	// ErrDistanceArity is returned by [New] when the distance vector length
	// does not match the mirror count of the symbol.
	ErrDistanceArity = errors.New("distance vector length must match mirror count")

	// ErrNegativeDistance is returned by [New] for a negative mirror distance.
	ErrNegativeDistance = errors.New("distances must be non-negative")

	// ErrZeroDistances is returned by [New] when every distance is zero and
	// the initial vertex would degenerate to the origin.
	ErrZeroDistances = errors.New("at least one distance must be nonzero")

	// ErrSnubRank is returned by [NewSnub] for a 4-mirror symbol; the snub
	// construction is defined for polyhedra only.
	ErrSnubRank = errors.New("snub construction requires a 3-mirror symbol")

	// ErrSnubDistances is returned by [NewSnub] when a distance is zero; the
	// snub initial vertex must lie off every mirror.
	ErrSnubDistances = errors.New("snub construction requires all distances nonzero")
)

// Builder runs the Wythoff construction: it derives the symmetry model from
// a Coxeter symbol and an initial-distance vector, then enumerates vertex,
// edge and face orbits in that order. A Builder is single-use; Build may be
// called once.
type Builder struct {
	cm          coxeter.Matrix
	dist        []float64
	active      []bool
	mirrors     []geom.Vector
	reflections []geom.Matrix
	initPoint   geom.Vector
	model       symmetryModel
	snub        bool
	limit       int

	// vtable is the vertex-level action table: rows are vertex cosets,
	// columns are generators. It is produced by the vertex stage and lent
	// read-only to the edge and face stages, which place geometry purely by
	// index lookups instead of recomputing transforms.
	vtable *coset.Table
	vwords [][]int
}

// Option configures a Builder.
type Option func(*Builder)

// WithMaxCosets caps the coset tables requested during construction.
// The default is [coset.DefaultLimit].
func WithMaxCosets(n int) Option {
	return func(b *Builder) { b.limit = n }
}

// New prepares the reflective Wythoff construction for the given
// upper-triangle Coxeter symbol (3 or 6 integers) and mirror distances
// (3 or 4 non-negative floats, not all zero). Inputs are validated for
// arity only; whether the symbol describes a finite group is discovered
// during enumeration.
func New(symbol []int, dist []float64, opts ...Option) (*Builder, error) {
	b, err := newBuilder(symbol, dist, opts...)
	if err != nil {
		return nil, err
	}
	b.model = &reflectionModel{cm: b.cm, reflections: b.reflections, active: b.active}
	return b, nil
}

// NewSnub prepares the chiral construction over the rotation subgroup.
// The symbol must have 3 entries and every distance must be nonzero; nil
// distances default to (1, 1, 1).
func NewSnub(symbol []int, dist []float64, opts ...Option) (*Builder, error) {
	if dist == nil {
		dist = []float64{1, 1, 1}
	}
	b, err := newBuilder(symbol, dist, opts...)
	if err != nil {
		return nil, err
	}
	if b.cm.Dim() != 3 {
		return nil, ErrSnubRank
	}
	for _, a := range b.active {
		if !a {
			return nil, ErrSnubDistances
		}
	}
	b.snub = true
	b.model = &rotationModel{cm: b.cm, reflections: b.reflections}
	return b, nil
}

func newBuilder(symbol []int, dist []float64, opts ...Option) (*Builder, error) {
	cm, err := coxeter.FromUpperTriangle(symbol)
	if err != nil {
		return nil, err
	}
	if len(dist) != cm.Dim() {
		return nil, fmt.Errorf("%w: %d mirrors, %d distances", ErrDistanceArity, cm.Dim(), len(dist))
	}
	anyNonzero := false
	for _, d := range dist {
		if d < 0 {
			return nil, ErrNegativeDistance
		}
		if d != 0 {
			anyNonzero = true
		}
	}
	if !anyNonzero {
		return nil, ErrZeroDistances
	}

	mirrors := geom.MirrorsFromCoxeterMatrix(cm)
	reflections := make([]geom.Matrix, len(mirrors))
	for i, n := range mirrors {
		reflections[i] = geom.ReflectionMatrix(n)
	}
	initPoint, err := geom.InitialPointFromDistances(mirrors, dist)
	if err != nil {
		return nil, err
	}
	active := make([]bool, len(dist))
	for i, d := range dist {
		active[i] = d != 0
	}

	return &Builder{
		cm:          cm,
		dist:        dist,
		active:      active,
		mirrors:     mirrors,
		reflections: reflections,
		initPoint:   initPoint,
		limit:       coset.DefaultLimit,
	}, nil
}

// Build enumerates vertices, then edges, then faces, and returns the
// finished aggregate. Later stages depend on the vertex stage's coordinate
// list and action table, so the order is fixed. Any enumeration failure
// (typically [coset.ErrTableOverflow] for a non-spherical symbol) aborts
// the whole construction with no partial result.
func (b *Builder) Build() (*Polytope, error) {
	pol := &Polytope{
		Dim:    b.cm.Dim(),
		Symbol: b.cm.UpperTriangle(),
		Snub:   b.snub,
	}

	if err := b.buildVertices(pol); err != nil {
		return nil, err
	}
	var err error
	if b.snub {
		b.buildSnubEdges(pol)
		b.buildSnubFaces(pol)
	} else {
		if err = b.buildEdges(pol); err != nil {
			return nil, err
		}
		err = b.buildFaces(pol)
	}
	if err != nil {
		return nil, err
	}
	return pol, nil
}

// buildVertices enumerates the cosets of the initial vertex's stabilizer.
// By orbit-stabilizer these cosets are in bijection with the vertices, so
// the coordinate list has exactly one entry per coset and needs no
// deduplication.
func (b *Builder) buildVertices(pol *Polytope) error {
	t, err := coset.Enumerate(b.model.presentation(), b.model.vertexStabilizer(), b.limit)
	if err != nil {
		return fmt.Errorf("vertex orbit: %w", err)
	}
	b.vtable = t
	b.vwords = t.Words()

	pol.Vertices = make([]geom.Vector, t.Len())
	for c, w := range b.vwords {
		pol.Vertices[c] = b.model.transform(b.initPoint, w)
	}
	return nil
}

// buildEdges enumerates one orbit per active mirror i: the base edge joins
// the initial vertex to its mirror image, its stabilizer is generated by
// the single word (i). Edge endpoints are resolved through the vertex
// action table and deduplicated as undirected pairs.
func (b *Builder) buildEdges(pol *Polytope) error {
	pres := b.model.presentation()
	for i, a := range b.active {
		if !a {
			continue
		}
		t, err := coset.Enumerate(pres, [][]int{{i}}, b.limit)
		if err != nil {
			return fmt.Errorf("edge orbit %d: %w", i, err)
		}
		orbit := EdgeOrbit{Type: i}
		for _, w := range t.Words() {
			v1 := b.vtable.Move(0, w)
			v2 := b.vtable.Move(b.vtable.Act(0, i), w)
			if !hasPair(orbit.Pairs, v1, v2) {
				orbit.Pairs = append(orbit.Pairs, [2]int{v1, v2})
			}
		}
		b.realizeEdges(&orbit, pol)
		pol.Edges = append(pol.Edges, orbit)
	}
	return nil
}

// realizeEdges fills coordinate pairs by lookup in the finished vertex
// list; transforms are never recomputed here.
func (b *Builder) realizeEdges(o *EdgeOrbit, pol *Polytope) {
	o.Coords = make([][2]geom.Vector, len(o.Pairs))
	for k, e := range o.Pairs {
		o.Coords[k] = [2]geom.Vector{pol.Vertices[e[0]], pol.Vertices[e[1]]}
	}
}

// buildSnubEdges derives one orbit per rotation generator plus the diagonal
// rotation rs. The base edge joins the initial vertex to its image under
// the rotation; every vertex-orbit word transforms it, with undirected
// deduplication as in the reflective case.
func (b *Builder) buildSnubEdges(pol *Polytope) {
	rotations := [][]int{{letterR}, {letterS}, {letterR, letterS}}
	for ri, rot := range rotations {
		e0 := [2]int{0, b.vtable.Move(0, rot)}
		orbit := EdgeOrbit{Type: ri}
		for _, w := range b.vwords {
			v1 := b.vtable.Move(e0[0], w)
			v2 := b.vtable.Move(e0[1], w)
			if !hasPair(orbit.Pairs, v1, v2) {
				orbit.Pairs = append(orbit.Pairs, [2]int{v1, v2})
			}
		}
		b.realizeEdges(&orbit, pol)
		pol.Edges = append(pol.Edges, orbit)
	}
}

// hasPair reports whether (a,b) or (b,a) is already collected.
func hasPair(pairs [][2]int, a, b int) bool {
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}
