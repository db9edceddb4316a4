package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/polytopia/wythoff/pkg/errors"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	if c.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}

	// The five Platonic solids must always be present.
	for _, name := range []string{"tetrahedron", "cube", "octahedron", "dodecahedron", "icosahedron"} {
		e, err := c.Find(name)
		if err != nil {
			t.Errorf("Find(%q): %v", name, err)
			continue
		}
		if len(e.Symbol) != 3 {
			t.Errorf("%q symbol = %v", name, e.Symbol)
		}
	}

	// All entries validate, snub entries are 3D.
	for _, e := range c.Entries() {
		if err := e.Validate(); err != nil {
			t.Errorf("entry %q: %v", e.Name, err)
		}
		if e.Snub && len(e.Symbol) != 3 {
			t.Errorf("snub entry %q has symbol %v", e.Name, e.Symbol)
		}
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Builtin().Find("hypersphere")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
[[polytope]]
name = "cube"
symbol = [4, 2, 3]
distances = [1, 0, 0]

[[polytope]]
name = "snub-cube"
symbol = [4, 2, 3]
snub = true
`)
	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	e, err := c.Find("snub-cube")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !e.Snub || e.Distances != nil {
		t.Errorf("snub entry = %+v", e)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"broken toml", `[[polytope]`},
		{"bad name", "[[polytope]]\nname = \"Bad Name\"\nsymbol = [4, 2, 3]\ndistances = [1, 0, 0]\n"},
		{"bad symbol arity", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2]\ndistances = [1, 0, 0]\n"},
		{"symbol entry below 2", "[[polytope]]\nname = \"x\"\nsymbol = [4, 1, 3]\ndistances = [1, 0, 0]\n"},
		{"distance arity", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2, 3]\ndistances = [1, 0]\n"},
		{"negative distance", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2, 3]\ndistances = [1, -1, 0]\n"},
		{"all-zero distances", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2, 3]\ndistances = [0, 0, 0]\n"},
		{"snub with 4 mirrors", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2, 2, 3, 2, 3]\nsnub = true\n"},
		{"duplicate name", "[[polytope]]\nname = \"x\"\nsymbol = [4, 2, 3]\ndistances = [1, 0, 0]\n\n[[polytope]]\nname = \"x\"\nsymbol = [3, 2, 3]\ndistances = [1, 0, 0]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := "[[polytope]]\nname = \"tetrahedron\"\nsymbol = [3, 2, 3]\ndistances = [1, 0, 0]\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("missing file err = %v, want INVALID_PATH", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Builtin().Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
