package pov

import (
	"strings"
	"testing"

	"github.com/polytopia/wythoff/pkg/polytope"
)

func buildPolytope(t *testing.T, symbol []int, dist []float64) *polytope.Polytope {
	t.Helper()
	b, err := polytope.New(symbol, dist)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestRenderInclude_Polyhedron(t *testing.T) {
	p := buildPolytope(t, []int{4, 2, 3}, []float64{1, 0, 0})
	out, err := RenderInclude(p)
	if err != nil {
		t.Fatalf("RenderInclude: %v", err)
	}
	s := string(out)

	if got := strings.Count(s, "Vertex("); got != 8 {
		t.Errorf("Vertex calls = %d, want 8", got)
	}
	if got := strings.Count(s, "Edge(0, "); got != 12 {
		t.Errorf("Edge calls = %d, want 12", got)
	}
	if got := strings.Count(s, "Face(0, 4, vertices_list)"); got != 6 {
		t.Errorf("Face calls = %d, want 6", got)
	}
	if got := strings.Count(s, "#declare vertices_list = array[4]{"); got != 6 {
		t.Errorf("array declarations = %d, want 6", got)
	}
	if strings.Contains(s, "extent") {
		t.Error("3D include should not declare extent")
	}
}

func TestRenderInclude_Polychoron(t *testing.T) {
	p := buildPolytope(t, []int{4, 2, 2, 3, 2, 3}, []float64{1, 0, 0, 0})
	out, err := RenderInclude(p)
	if err != nil {
		t.Fatalf("RenderInclude: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "#declare extent = ") {
		t.Error("4D include must start with the extent declaration")
	}
	if got := strings.Count(s, "Vertex("); got != 16 {
		t.Errorf("Vertex calls = %d, want 16", got)
	}
	if got := strings.Count(s, "Edge(0, "); got != 32 {
		t.Errorf("Edge calls = %d, want 32", got)
	}
	// Tesseract faces avoid the projection pole, so every face is a bubble.
	if got := strings.Count(s, "BubbleFace(0, 4, vertices_list"); got != 24 {
		t.Errorf("BubbleFace calls = %d, want 24", got)
	}
	// Projected 4D vertices are 3-vectors.
	line := s[strings.Index(s, "Vertex(") : strings.Index(s, "Vertex(")+200]
	line = line[:strings.Index(line, "\n")]
	if got := strings.Count(line, ","); got != 2 {
		t.Errorf("projected vertex %q has %d commas, want 2", line, got)
	}
}

func TestRenderInclude_Options(t *testing.T) {
	p := buildPolytope(t, []int{3, 2, 3}, []float64{1, 0, 0})

	out, err := RenderInclude(p, WithPrecision(3), WithHeader("tetrahedron"))
	if err != nil {
		t.Fatalf("RenderInclude: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "// tetrahedron\n") {
		t.Errorf("missing header: %q", s[:40])
	}
	first := s[strings.Index(s, "Vertex(") : strings.Index(s, ")\n")+1]
	if strings.Contains(first, "0.0000") {
		t.Errorf("precision not applied: %q", first)
	}
}

func TestRenderInclude_Deterministic(t *testing.T) {
	p := buildPolytope(t, []int{5, 2, 3}, []float64{0, 1, 0})
	a, err := RenderInclude(p)
	if err != nil {
		t.Fatalf("RenderInclude: %v", err)
	}
	b, err := RenderInclude(p)
	if err != nil {
		t.Fatalf("RenderInclude: %v", err)
	}
	if string(a) != string(b) {
		t.Error("output differs between runs")
	}
}

func TestRenderInclude_InvalidPolytope(t *testing.T) {
	p := &polytope.Polytope{
		Dim:      3,
		Vertices: nil,
		Edges:    []polytope.EdgeOrbit{{Type: 0, Pairs: [][2]int{{0, 1}}}},
	}
	if _, err := RenderInclude(p); err == nil {
		t.Fatal("RenderInclude succeeded on out-of-range indices")
	}
}
