package geom

import "math"

// projEps keeps the stereographic pole off the unit sphere so a vertex
// sitting exactly at w = 1 does not divide by zero.
const projEps = 1e-8

// Proj3D maps a point on the unit 3-sphere to R^3 by stereographic
// projection from the pole (0, 0, 0, 1).
func Proj3D(v Vector) Vector {
	s := 1 / (1 + projEps - v[3])
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

// SphereInfo describes the projected image of a 4D face polygon: either a
// flat polygon (its carrier plane passes through the origin, so the
// stereographic image stays planar) or a spherical cap with a center and
// radius. FaceSize is the projected distance from the first vertex to the
// face barycenter, used by exporters to scale surface detail.
type SphereInfo struct {
	IsPlane  bool
	Center   Vector // 3D center: barycenter for planes, sphere center otherwise
	Radius   float64
	FaceSize float64
}

// FaceSphere computes the [SphereInfo] of a face given its 4D vertex
// polygon. The sphere through the projected face is recovered from three
// projected vertices plus the projected barycenter; a singular system or a
// barycenter on the carrier plane marks the face as flat.
func FaceSphere(points []Vector) SphereInfo {
	dim := len(points[0])
	bary := make(Vector, dim)
	for _, p := range points {
		for i := range bary {
			bary[i] += p[i]
		}
	}
	bary = bary.Scale(1 / float64(len(points)))

	// The barycenter is pushed back onto the unit sphere before projecting.
	// Projection is perspective from the pole, so the unprojected barycenter
	// would land exactly in the plane of the projected vertices and the
	// sphere solve below would always be singular.
	bary3 := Proj3D(bary.Normalize())
	pts3 := make([]Vector, 3)
	for i := range pts3 {
		pts3[i] = Proj3D(points[i])
	}
	info := SphereInfo{FaceSize: Proj3D(points[0]).Sub(bary3).Norm()}

	// x.x + t0*x0 + t1*x1 + t2*x2 + t3 = 0 through three vertices and the
	// barycenter determines the sphere; coplanar rows make it singular.
	rows := append(pts3, bary3)
	a := make(Matrix, 4)
	b := make([]float64, 4)
	for i, x := range rows {
		a[i] = []float64{x[0], x[1], x[2], 1}
		b[i] = -x.Dot(x)
	}
	t, err := Solve(a, b)
	if err != nil {
		info.IsPlane = true
		info.Center = bary3
		return info
	}

	center := Vector{-t[0] / 2, -t[1] / 2, -t[2] / 2}
	radius := math.Sqrt(center.Dot(center) - t[3])
	// A face whose carrier sphere passes through the projection pole maps to
	// a plane; numerically that shows up as a blown-up radius.
	if radius > 1e4 {
		info.IsPlane = true
		info.Center = bary3
		return info
	}
	info.Center = center
	info.Radius = radius
	return info
}
