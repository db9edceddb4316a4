// Package catalog provides the named library of uniform polytopes.
//
// A catalog is a TOML document with one [[polytope]] table per entry, each
// naming a Coxeter symbol and initial-vertex distances. The built-in catalog
// covers the Platonic and Archimedean solids plus the regular polychora and
// is embedded directly into the binary using go:embed.
package catalog

import (
	_ "embed"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/polytopia/wythoff/pkg/errors"
)

//go:embed catalog.toml
var builtinTOML []byte

// Entry describes one named polytope: the symmetry symbol, the initial
// vertex, and whether the chiral snub construction applies. Snub entries may
// omit Distances; the builder defaults them to (1, 1, 1).
type Entry struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Symbol      []int     `toml:"symbol"`
	Distances   []float64 `toml:"distances"`
	Snub        bool      `toml:"snub"`
}

// Validate checks the entry for structural problems: a malformed name, a
// symbol of the wrong arity, or distances that cannot place a vertex.
func (e *Entry) Validate() error {
	if err := errors.ValidateCatalogName(e.Name); err != nil {
		return err
	}
	var dim int
	switch len(e.Symbol) {
	case 3:
		dim = 3
	case 6:
		dim = 4
	default:
		return errors.New(errors.ErrCodeInvalidCatalog,
			"entry %q: symbol needs 3 or 6 entries, got %d", e.Name, len(e.Symbol))
	}
	for _, m := range e.Symbol {
		if m < 2 {
			return errors.New(errors.ErrCodeInvalidCatalog,
				"entry %q: symbol entries must be at least 2", e.Name)
		}
	}
	if e.Snub {
		if dim != 3 {
			return errors.New(errors.ErrCodeInvalidCatalog,
				"entry %q: snub entries must have a 3-mirror symbol", e.Name)
		}
		if e.Distances == nil {
			return nil
		}
	}
	if len(e.Distances) != dim {
		return errors.New(errors.ErrCodeInvalidCatalog,
			"entry %q: %d mirrors need %d distances, got %d", e.Name, dim, dim, len(e.Distances))
	}
	nonzero := false
	for _, d := range e.Distances {
		if d < 0 {
			return errors.New(errors.ErrCodeInvalidCatalog,
				"entry %q: distances must be non-negative", e.Name)
		}
		if d != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		return errors.New(errors.ErrCodeInvalidCatalog,
			"entry %q: at least one distance must be nonzero", e.Name)
	}
	return nil
}

// Catalog is a validated, name-indexed set of entries.
type Catalog struct {
	entries []Entry
	byName  map[string]*Entry
}

// Parse decodes and validates a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Polytopes []Entry `toml:"polytope"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parsing catalog")
	}

	c := &Catalog{
		entries: doc.Polytopes,
		byName:  make(map[string]*Entry, len(doc.Polytopes)),
	}
	for i := range c.entries {
		e := &c.entries[i]
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate entry %q", e.Name)
		}
		c.byName[e.Name] = e
	}
	return c, nil
}

// LoadFile reads and parses a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading catalog %s", path)
	}
	return Parse(data)
}

// Builtin returns the embedded catalog. The embedded document is fixed at
// build time, so a parse failure is a programming error.
func Builtin() *Catalog {
	c, err := Parse(builtinTOML)
	if err != nil {
		panic(err)
	}
	return c
}

// Find returns the entry with the given name.
func (c *Catalog) Find(name string) (*Entry, error) {
	e, ok := c.byName[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no catalog entry named %q", name)
	}
	return e, nil
}

// Entries returns all entries in document order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Names returns all entry names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }
