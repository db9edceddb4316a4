// Package coset implements Todd-Coxeter coset enumeration for finitely
// presented groups.
//
// Given a presentation (an alphabet of generators with declared inverses and
// a set of relator words) and the generating words of a subgroup H, Enumerate
// produces the action of every generator on the cosets of H as a dense table,
// together with one minimal-length representative word per coset and the
// index [G:H].
//
// The enumeration follows the HLT strategy: subgroup generator words are
// scanned under coset 0, then every relator is scanned under every live
// coset, defining new cosets to fill gaps and merging cosets via union-find
// when a scan closes on two different numbers. Enumeration is deterministic:
// identical inputs produce an identical table.
//
// The procedure cannot decide non-termination, so a hard coset limit is
// enforced instead: if more cosets are defined than the limit allows,
// Enumerate fails with [ErrTableOverflow] and no partial table is returned.
package coset

import (
	"errors"
	"fmt"
)

// DefaultLimit is the default maximum number of simultaneously live cosets.
// It sits comfortably above the largest spherical 4D reflection group
// (|H4| = 14400) while catching affine and hyperbolic diagrams quickly.
const DefaultLimit = 65536

// ErrTableOverflow is returned by [Enumerate] when the coset table exceeds
// its limit before closing. For this system that means the input diagram
// does not describe a finite (spherical) group, or the limit is too small.
var ErrTableOverflow = errors.New("coset table exceeded limit")

const undef = -1

// Presentation describes a finitely presented group over an alphabet
// 0..NumGens-1. Inv maps each letter to its inverse letter; an involution is
// its own inverse. Relators are words that equal the identity.
//
// The table maintains entries in inverse-consistent pairs, so involution
// relators (i,i) are implied by Inv[i] == i and need not be listed.
type Presentation struct {
	NumGens  int
	Inv      []int
	Relators [][]int
}

// Involutions returns a presentation in which every generator is an
// involution, the shape taken by reflection groups.
func Involutions(numGens int, relators [][]int) Presentation {
	inv := make([]int, numGens)
	for i := range inv {
		inv[i] = i
	}
	return Presentation{NumGens: numGens, Inv: inv, Relators: relators}
}

// Table is the completed action of a group on the cosets of a subgroup.
// Rows are cosets, columns are generators; coset 0 is the subgroup itself.
// A Table is immutable after enumeration and safe to share read-only.
type Table struct {
	numGens int
	rows    [][]int
	words   [][]int
}

// Len returns the number of cosets, the subgroup index [G:H].
func (t *Table) Len() int { return len(t.rows) }

// Act returns the coset reached from c by one application of generator g.
func (t *Table) Act(c, g int) int { return t.rows[c][g] }

// Move applies a word letter by letter starting from coset c.
func (t *Table) Move(c int, word []int) int {
	for _, g := range word {
		c = t.rows[c][g]
	}
	return c
}

// Words returns a minimal-length representative word for every coset,
// indexed by coset number. Words are produced by breadth-first search from
// coset 0 in generator order, so word lengths are canonical even though the
// specific representative depends on that order. The identity coset has the
// empty word. Callers must not modify the returned slices.
func (t *Table) Words() [][]int { return t.words }

// Enumerate runs coset enumeration for the subgroup generated by subGens
// inside the group given by pres. limit caps the number of cosets ever
// defined; pass 0 for [DefaultLimit].
func Enumerate(pres Presentation, subGens [][]int, limit int) (*Table, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	e := &enumerator{pres: pres, limit: limit}
	e.addCoset()

	for _, w := range subGens {
		if err := e.scanAndFill(0, w); err != nil {
			return nil, err
		}
	}

	for a := 0; a < len(e.table); a++ {
		if e.p[a] != a {
			continue // dead
		}
		for _, rel := range pres.Relators {
			if err := e.scanAndFill(a, rel); err != nil {
				return nil, err
			}
			if e.p[a] != a {
				break
			}
		}
		if e.p[a] != a {
			continue
		}
		for x := 0; x < pres.NumGens; x++ {
			if e.table[a][x] == undef {
				if err := e.define(a, x); err != nil {
					return nil, err
				}
			}
		}
	}

	return e.compress(), nil
}

// enumerator holds the mutable state of one run: a growing table with undef
// gaps, and a union-find forest over coset numbers where the representative
// is always the smallest number in its class.
type enumerator struct {
	pres  Presentation
	table [][]int
	p     []int // union-find parent; p[c] == c iff c is live
	queue []int // pending dead cosets during coincidence handling
	live  int
	limit int
}

func (e *enumerator) addCoset() int {
	row := make([]int, e.pres.NumGens)
	for i := range row {
		row[i] = undef
	}
	e.table = append(e.table, row)
	e.p = append(e.p, len(e.p))
	e.live++
	return len(e.table) - 1
}

// define creates a fresh coset b with a^x = b, keeping the inverse pairing
// b^(x^-1) = a.
func (e *enumerator) define(a, x int) error {
	if e.live >= e.limit {
		return fmt.Errorf("%w: %d cosets", ErrTableOverflow, e.live)
	}
	b := e.addCoset()
	e.table[a][x] = b
	e.table[b][e.pres.Inv[x]] = a
	return nil
}

// rep finds the live representative of coset k with path compression.
func (e *enumerator) rep(k int) int {
	l := k
	for e.p[l] != l {
		l = e.p[l]
	}
	for e.p[k] != l {
		e.p[k], k = l, e.p[k]
	}
	return l
}

// merge unions two cosets, queueing the larger number for row transfer.
func (e *enumerator) merge(a, b int) {
	a, b = e.rep(a), e.rep(b)
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	e.p[b] = a
	e.live--
	e.queue = append(e.queue, b)
}

// coincidence records that cosets a and b are equal and transfers the table
// rows of every coset that dies as a result, possibly discovering further
// coincidences along the way.
func (e *enumerator) coincidence(a, b int) {
	e.queue = e.queue[:0]
	e.merge(a, b)
	for i := 0; i < len(e.queue); i++ {
		dead := e.queue[i]
		for x := 0; x < e.pres.NumGens; x++ {
			d := e.table[dead][x]
			if d == undef {
				continue
			}
			// Entries come in inverse pairs, so the only reference to a dead
			// coset is through its own row; drop the back-pointer and
			// reinstall the image under the live representatives.
			e.table[d][e.pres.Inv[x]] = undef
			mu, nu := e.rep(dead), e.rep(d)
			switch {
			case e.table[mu][x] != undef:
				e.merge(nu, e.table[mu][x])
			case e.table[nu][e.pres.Inv[x]] != undef:
				e.merge(mu, e.table[nu][e.pres.Inv[x]])
			default:
				e.table[mu][x] = nu
				e.table[nu][e.pres.Inv[x]] = mu
			}
		}
	}
}

// scanAndFill traces word w from coset a forwards and backwards, defining
// cosets for any interior gap until the scan either completes or closes
// with a deduction or coincidence.
func (e *enumerator) scanAndFill(a int, w []int) error {
	i, j := 0, len(w)-1
	f, b := a, a
	for {
		for i <= j && e.table[f][w[i]] != undef {
			f = e.table[f][w[i]]
			i++
		}
		if i > j {
			if f != b {
				e.coincidence(f, b)
			}
			return nil
		}
		for j >= i && e.table[b][e.pres.Inv[w[j]]] != undef {
			b = e.table[b][e.pres.Inv[w[j]]]
			j--
		}
		switch {
		case j < i:
			e.coincidence(f, b)
			return nil
		case j == i:
			e.table[f][w[i]] = b
			e.table[b][e.pres.Inv[w[i]]] = f
			return nil
		default:
			if err := e.define(f, w[i]); err != nil {
				return err
			}
		}
	}
}

// compress renumbers live cosets densely, rewrites every entry through the
// union-find forest, and computes BFS representative words.
func (e *enumerator) compress() *Table {
	remap := make([]int, len(e.table))
	var live []int
	for c := range e.table {
		if e.p[c] == c {
			remap[c] = len(live)
			live = append(live, c)
		}
	}

	rows := make([][]int, len(live))
	for n, c := range live {
		row := make([]int, e.pres.NumGens)
		for x := 0; x < e.pres.NumGens; x++ {
			row[x] = remap[e.rep(e.table[c][x])]
		}
		rows[n] = row
	}

	t := &Table{numGens: e.pres.NumGens, rows: rows}
	t.words = t.bfsWords()
	return t
}

func (t *Table) bfsWords() [][]int {
	words := make([][]int, len(t.rows))
	words[0] = []int{}
	queue := []int{0}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for x := 0; x < t.numGens; x++ {
			d := t.rows[c][x]
			if d != 0 && words[d] == nil {
				w := make([]int, len(words[c])+1)
				copy(w, words[c])
				w[len(w)-1] = x
				words[d] = w
				queue = append(queue, d)
			}
		}
	}
	return words
}
