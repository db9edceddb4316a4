// Package pkg provides the core libraries for the wythoff polytope builder.
//
// # Overview
//
// Wythoff constructs uniform 3D and 4D polytopes from Coxeter-Dynkin
// diagrams: a symmetry symbol plus the distances of an initial vertex to
// the group's mirrors determine every vertex, edge and face of the solid.
// The pkg directory is organized into four main areas:
//
//  1. [coxeter], [coset], [geom] - Group theory and mirror geometry
//  2. [polytope] - The Wythoff construction itself
//  3. [catalog], [render/pov] - Named solids and POV-Ray export
//  4. [pipeline], [cache] - Orchestration (build → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	Coxeter symbol + initial-vertex distances
//	         ↓
//	    [coxeter] package (validate the symbol)
//	         ↓
//	    [coset] package (enumerate group elements as cosets)
//	         ↓
//	    [geom] package (mirror normals, reflections, initial vertex)
//	         ↓
//	    [polytope] package (vertex, edge and face orbits)
//	         ↓
//	    [render/pov] package (POV-Ray include output)
//
// # Quick Start
//
// Build a dodecahedron and render its POV-Ray include:
//
//	import (
//	    "github.com/polytopia/wythoff/pkg/polytope"
//	    "github.com/polytopia/wythoff/pkg/render/pov"
//	)
//
//	// 1. Prepare the construction
//	b, _ := polytope.New([]int{5, 2, 3}, []float64{1, 0, 0})
//
//	// 2. Enumerate vertices, edges and faces
//	p, _ := b.Build()
//
//	// 3. Render the include file
//	inc, _ := pov.RenderInclude(p)
//
// Chiral solids use [polytope.NewSnub] instead, which works in the
// rotation subgroup of the symmetry group.
//
// # Main Packages
//
// [coxeter] - Coxeter matrices built from the upper-triangle symbol given
// on the command line, with validation of arity and entries.
//
// [coset] - Todd-Coxeter coset enumeration over a finitely presented
// group. Produces an action table plus a minimal word for every coset,
// which the construction uses both combinatorially (element counting)
// and geometrically (applying words as reflection products).
//
// [geom] - Small dense linear algebra: mirror normals from the Gram
// matrix, reflection matrices, Gaussian elimination, and the
// stereographic projection used for 4D output.
//
// [polytope] - The construction proper. Vertices are cosets of the
// initial-vertex stabilizer, edges are cosets of single-mirror subgroups,
// faces are cosets of mirror-pair subgroups. Includes the snub variant.
//
// [catalog] - The built-in TOML catalog of named solids, plus parsing of
// user-supplied catalog files.
//
// [render/pov] - Data-only POV-Ray include files. 3D solids emit plain
// vertex and edge macros; 4D solids are projected stereographically and
// faces become flat polygons or sphere bubbles.
//
// [pipeline] - Complete build pipeline (validate → build → render) used
// by the CLI. Caches rendered includes keyed by every output-affecting
// option.
//
// [cache] - Content-addressed file cache for build artifacts, with a
// null implementation for cache-off runs.
//
// [errors] - Structured errors with stable codes and user-facing
// messages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/polytope/...        # Specific package
//
// [coxeter]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/coxeter
// [coset]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/coset
// [geom]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/geom
// [polytope]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/polytope
// [polytope.NewSnub]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/polytope#NewSnub
// [catalog]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/catalog
// [render/pov]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/render/pov
// [pipeline]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/cache
// [errors]: https://pkg.go.dev/github.com/polytopia/wythoff/pkg/errors
package pkg
