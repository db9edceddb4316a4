// Package pov renders polytopes as POV-Ray include files.
//
// The output is a data-only include: one Vertex(...) call per vertex, one
// Edge(type, ...) call per edge and one face call per face, to be consumed
// by a scene file that defines the corresponding macros. 3D faces use the
// Face macro directly; 4D faces are stereographically projected and come out
// as FlatFace or BubbleFace depending on whether the projected polygon stays
// planar.
package pov

import (
	"fmt"
	"strings"

	"github.com/polytopia/wythoff/pkg/errors"
	"github.com/polytopia/wythoff/pkg/geom"
	"github.com/polytopia/wythoff/pkg/polytope"
)

// Option configures include rendering via [RenderInclude].
type Option func(*renderer)

type renderer struct {
	precision int
	header    string
}

// WithPrecision sets the number of decimal digits for coordinates.
// The default is 8.
func WithPrecision(digits int) Option { return func(r *renderer) { r.precision = digits } }

// WithHeader prepends a comment line to the include file, typically the
// generating command or catalog entry name.
func WithHeader(h string) Option { return func(r *renderer) { r.header = h } }

// RenderInclude renders the polytope as a POV-Ray include file.
func RenderInclude(p *polytope.Polytope, opts ...Option) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "invalid polytope")
	}

	r := &renderer{precision: 8}
	for _, opt := range opts {
		opt(r)
	}

	var b strings.Builder
	if r.header != "" {
		fmt.Fprintf(&b, "// %s\n", r.header)
	}
	if p.Dim == 4 {
		r.render4D(&b, p)
	} else {
		r.render3D(&b, p)
	}
	return []byte(b.String()), nil
}

func (r *renderer) render3D(b *strings.Builder, p *polytope.Polytope) {
	for _, v := range p.Vertices {
		fmt.Fprintf(b, "Vertex(%s)\n", r.vector(v))
	}
	for _, orbit := range p.Edges {
		for _, e := range orbit.Coords {
			fmt.Fprintf(b, "Edge(%d, %s, %s)\n", orbit.Type, r.vector(e[0]), r.vector(e[1]))
		}
	}
	for i, orbit := range p.Faces {
		for _, face := range orbit.Coords {
			r.array(b, face)
			fmt.Fprintf(b, "Face(%d, %d, vertices_list)\n", i, len(face))
		}
	}
}

func (r *renderer) render4D(b *strings.Builder, p *polytope.Polytope) {
	// extent is the largest projected vertex radius; scene files use it to
	// frame the camera.
	extent := 0.0
	proj := make([]geom.Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		proj[i] = geom.Proj3D(v)
		if n := proj[i].Norm(); n > extent {
			extent = n
		}
	}
	fmt.Fprintf(b, "#declare extent = %s;\n", r.number(extent))

	for _, v := range proj {
		fmt.Fprintf(b, "Vertex(%s)\n", r.vector(v))
	}
	for _, orbit := range p.Edges {
		for _, e := range orbit.Coords {
			fmt.Fprintf(b, "Edge(%d, %s, %s)\n",
				orbit.Type, r.vector(geom.Proj3D(e[0])), r.vector(geom.Proj3D(e[1])))
		}
	}
	for i, orbit := range p.Faces {
		for _, face := range orbit.Coords {
			info := geom.FaceSphere(face)
			projected := make([]geom.Vector, len(face))
			for k, v := range face {
				projected[k] = geom.Proj3D(v)
			}
			r.array(b, projected)
			if info.IsPlane {
				fmt.Fprintf(b, "FlatFace(%d, %d, vertices_list, %s, %s)\n",
					i, len(face), r.vector(info.Center), r.number(info.FaceSize))
			} else {
				fmt.Fprintf(b, "BubbleFace(%d, %d, vertices_list, %s, %s, %s)\n",
					i, len(face), r.vector(info.Center), r.number(info.Radius), r.number(info.FaceSize))
			}
		}
	}
}

// array emits the shared vertices_list declaration consumed by the
// immediately following face call.
func (r *renderer) array(b *strings.Builder, face []geom.Vector) {
	fmt.Fprintf(b, "#declare vertices_list = array[%d]{", len(face))
	for k, v := range face {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.vector(v))
	}
	b.WriteString("};\n")
}

func (r *renderer) vector(v geom.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = r.number(x)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (r *renderer) number(x float64) string {
	return fmt.Sprintf("%.*f", r.precision, x)
}
