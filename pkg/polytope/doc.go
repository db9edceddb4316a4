// Package polytope builds the complete vertex/edge/face structure of
// uniform 3D and 4D polytopes by Wythoff's construction.
//
// Two inputs determine a polytope: a Coxeter-Dynkin symbol (the
// upper-triangle entries of a Coxeter matrix, fixing the reflection
// symmetry group) and the distances of an initial vertex to the group's
// mirrors (fixing the truncation type). The builder derives the group
// presentation and mirror geometry, then enumerates orbits of the initial
// vertex under the group:
//
//   - Vertices are cosets of the initial vertex's stabilizer; each coset's
//     minimal representative word, read as a composition of reflections,
//     realizes the vertex coordinate.
//   - Edges of type i exist for each active mirror i and are cosets of the
//     subgroup generated by that reflection.
//   - Faces of type (i, j) come from the rotation ρiρj, with a case
//     analysis over which mirrors are active and whether they commute.
//
// The snub variant swaps in the rotation subgroup <r, s | r^p = s^q =
// (rs)^h = 1>, producing chiral polyhedra such as the snub cube.
//
//	b, _ := polytope.New([]int{4, 2, 3}, []float64{1, 0, 0})
//	cube, err := b.Build() // 8 vertices, 12 edges, 6 squares
//
// Construction is synchronous and deterministic. The only failure mode
// beyond input arity is coset.ErrTableOverflow, raised when the symbol
// does not describe a finite group.
package polytope
