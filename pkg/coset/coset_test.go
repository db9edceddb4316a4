package coset

import (
	"errors"
	"testing"
)

// coxeterPresentation builds the reflection-group presentation for a rank-3
// or rank-4 upper-triangle symbol, mirroring how the polytope builder feeds
// this package.
func coxeterPresentation(t *testing.T, symbol []int) Presentation {
	t.Helper()
	var dim int
	switch len(symbol) {
	case 3:
		dim = 3
	case 6:
		dim = 4
	default:
		t.Fatalf("bad symbol length %d", len(symbol))
	}
	m := make([][]int, dim)
	for i := range m {
		m[i] = make([]int, dim)
		m[i][i] = 1
	}
	k := 0
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			m[i][j], m[j][i] = symbol[k], symbol[k]
			k++
		}
	}
	var rels [][]int
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			var rel []int
			for n := 0; n < m[i][j]; n++ {
				rel = append(rel, i, j)
			}
			rels = append(rels, rel)
		}
	}
	return Involutions(dim, rels)
}

func TestEnumerate_GroupOrders(t *testing.T) {
	tests := []struct {
		name   string
		symbol []int
		want   int
	}{
		{"A3 tetrahedral", []int{3, 2, 3}, 24},
		{"B3 octahedral", []int{4, 2, 3}, 48},
		{"H3 icosahedral", []int{5, 2, 3}, 120},
		{"B4 hyperoctahedral", []int{4, 2, 2, 3, 2, 3}, 384},
		{"F4", []int{3, 2, 2, 4, 2, 3}, 1152},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Enumerate(coxeterPresentation(t, tt.symbol), nil, 0)
			if err != nil {
				t.Fatalf("Enumerate error: %v", err)
			}
			if tab.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", tab.Len(), tt.want)
			}
		})
	}
}

func TestEnumerate_SubgroupIndex(t *testing.T) {
	tests := []struct {
		name    string
		symbol  []int
		subGens [][]int
		want    int
	}{
		{"cube vertices", []int{4, 2, 3}, [][]int{{1}, {2}}, 8},
		{"octahedron vertices", []int{4, 2, 3}, [][]int{{0}, {1}}, 6},
		{"tetrahedron vertices", []int{3, 2, 3}, [][]int{{1}, {2}}, 4},
		{"cube edges", []int{4, 2, 3}, [][]int{{0}}, 24},
		{"dodecahedron vertices", []int{5, 2, 3}, [][]int{{1}, {2}}, 20},
		{"tesseract vertices", []int{4, 2, 2, 3, 2, 3}, [][]int{{1}, {2}, {3}}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Enumerate(coxeterPresentation(t, tt.symbol), tt.subGens, 0)
			if err != nil {
				t.Fatalf("Enumerate error: %v", err)
			}
			if tab.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", tab.Len(), tt.want)
			}
		})
	}
}

func TestEnumerate_RotationPresentation(t *testing.T) {
	// <r, s | r^4 = s^3 = (rs)^2 = 1> is the rotation group of the cube,
	// order 24, over the signed alphabet {r, r⁻¹, s, s⁻¹}.
	power := func(w []int, n int) []int {
		var out []int
		for i := 0; i < n; i++ {
			out = append(out, w...)
		}
		return out
	}
	pres := Presentation{
		NumGens: 4,
		Inv:     []int{1, 0, 3, 2},
		Relators: [][]int{
			power([]int{0}, 4),
			power([]int{2}, 3),
			power([]int{0, 2}, 2),
		},
	}
	tab, err := Enumerate(pres, nil, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	if tab.Len() != 24 {
		t.Errorf("Len() = %d, want 24", tab.Len())
	}
}

func TestEnumerate_RelatorRoundTrip(t *testing.T) {
	pres := coxeterPresentation(t, []int{5, 2, 3})
	tab, err := Enumerate(pres, [][]int{{1}, {2}}, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	for c := 0; c < tab.Len(); c++ {
		for _, rel := range pres.Relators {
			if got := tab.Move(c, rel); got != c {
				t.Fatalf("Move(%d, %v) = %d, want %d", c, rel, got, c)
			}
		}
	}
}

func TestEnumerate_InverseConsistency(t *testing.T) {
	pres := coxeterPresentation(t, []int{4, 2, 3})
	tab, err := Enumerate(pres, nil, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	// Every generator is an involution: acting twice returns home.
	for c := 0; c < tab.Len(); c++ {
		for g := 0; g < 3; g++ {
			if got := tab.Act(tab.Act(c, g), g); got != c {
				t.Fatalf("coset %d, generator %d: double action = %d", c, g, got)
			}
		}
	}
}

func TestWords_MinimalLength(t *testing.T) {
	tab, err := Enumerate(coxeterPresentation(t, []int{4, 2, 3}), [][]int{{1}, {2}}, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	words := tab.Words()
	if len(words[0]) != 0 {
		t.Errorf("identity coset word = %v, want empty", words[0])
	}
	for c, w := range words {
		// Each word must actually reach its coset from the identity.
		if got := tab.Move(0, w); got != c {
			t.Errorf("Move(0, words[%d]) = %d", c, got)
		}
		// BFS words grow by at most one letter per coset discovery, so no
		// shorter word can exist: verify by exhaustive check on prefixes.
		if len(w) > 0 {
			prefix := w[:len(w)-1]
			if tab.Move(0, prefix) == c {
				t.Errorf("words[%d] = %v is not minimal", c, w)
			}
		}
	}
}

func TestEnumerate_Overflow(t *testing.T) {
	// (6,2,3) is the affine triangle group: infinite, so the table can
	// never close and must hit the limit.
	_, err := Enumerate(coxeterPresentation(t, []int{6, 2, 3}), nil, 200)
	if !errors.Is(err, ErrTableOverflow) {
		t.Fatalf("err = %v, want ErrTableOverflow", err)
	}
}

func TestEnumerate_Deterministic(t *testing.T) {
	pres := coxeterPresentation(t, []int{5, 2, 3})
	a, err := Enumerate(pres, [][]int{{0}}, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	b, err := Enumerate(pres, [][]int{{0}}, 0)
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for c := 0; c < a.Len(); c++ {
		for g := 0; g < 3; g++ {
			if a.Act(c, g) != b.Act(c, g) {
				t.Fatalf("tables differ at (%d, %d)", c, g)
			}
		}
	}
}
