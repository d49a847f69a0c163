package simplex

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Filter selects the simplex membership rule.
type Filter int

const (
	// Lattice keeps tuples whose integer axis indices sum to N−1.
	Lattice Filter = iota
	// Exact keeps tuples whose floating-point sum equals 1.0 exactly.
	Exact
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case Lattice:
		return "lattice"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter maps "lattice" or "exact" (case-insensitive) to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lattice", "":
		return Lattice, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrFilter)
	}
}

// Grid is the immutable set of compositions for an axis resolution N.
type Grid struct {
	n      int
	filter Filter
	axis   []float64
	size   int
}

// NewGrid builds the composition grid for resolution n.
//
// Errors:
//   - ErrResolution (n < 2), ErrFilter, ErrEmptyGrid (no member passed the filter).
func NewGrid(n int, filter Filter) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrResolution)
	}
	if filter != Lattice && filter != Exact {
		return nil, fmt.Errorf("%v: %w", filter, ErrFilter)
	}
	g := &Grid{
		n:      n,
		filter: filter,
		axis:   floats.Span(make([]float64, n), 0, 1),
	}
	g.axis[n-1] = 1

	// Lattice size is closed-form; Exact needs one counting pass.
	if filter == Lattice {
		g.size = Count(n)
	} else {
		_ = g.Each(func(int, Composition) error {
			g.size++
			return nil
		})
	}
	if g.size == 0 {
		return nil, fmt.Errorf("n=%d filter=%v: %w", n, filter, ErrEmptyGrid)
	}

	return g, nil
}

// Count returns the number of lattice compositions for resolution n, the
// stars-and-bars count C(n−1+5, 5). It returns 0 for n < 2.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	// C(m+5, 5) with m = n−1, multiplied in increasing order so every
	// intermediate quotient is an integer.
	m := n - 1
	c := 1
	for k := 1; k < Components; k++ {
		c = c * (m + k) / k
	}

	return c
}

// N returns the axis resolution.
func (g *Grid) N() int { return g.n }

// Filter returns the membership rule.
func (g *Grid) Filter() Filter { return g.filter }

// Len returns the number of compositions.
func (g *Grid) Len() int { return g.size }

// Step returns the axis spacing 1/(N−1).
func (g *Grid) Step() float64 { return g.axis[1] - g.axis[0] }

// Axis returns a copy of the 1-D axis values.
func (g *Grid) Axis() []float64 {
	out := make([]float64, len(g.axis))
	copy(out, g.axis)

	return out
}

// Each calls fn for every member in enumeration order with its index.
// A non-nil error from fn stops the walk and is returned unchanged.
func (g *Grid) Each(fn func(i int, c Composition) error) error {
	if g.filter == Exact {
		return g.eachExact(fn)
	}

	return g.eachLattice(fn)
}

// All materializes every member in enumeration order.
func (g *Grid) All() []Composition {
	out := make([]Composition, 0, g.size)
	_ = g.Each(func(_ int, c Composition) error {
		out = append(out, c)
		return nil
	})

	return out
}

func (g *Grid) compose(idx *[Components]int) Composition {
	var c Composition
	for d, k := range idx {
		c[d] = g.axis[k]
	}

	return c
}

// eachLattice walks index prefixes in lexicographic order; the last index is
// forced to the remaining budget, so every visited leaf is a member.
func (g *Grid) eachLattice(fn func(int, Composition) error) error {
	var idx [Components]int
	i := 0
	var visit func(d, rem int) error
	visit = func(d, rem int) error {
		if d == Components-1 {
			idx[d] = rem
			err := fn(i, g.compose(&idx))
			i++
			return err
		}
		for k := 0; k <= rem; k++ {
			idx[d] = k
			if err := visit(d+1, rem-k); err != nil {
				return err
			}
		}

		return nil
	}

	return visit(0, g.n-1)
}

// eachExact walks the full N^6 product and keeps tuples whose float sum is 1.
func (g *Grid) eachExact(fn func(int, Composition) error) error {
	var idx [Components]int
	i := 0
	var visit func(d int) error
	visit = func(d int) error {
		if d == Components {
			c := g.compose(&idx)
			if c.Sum() != 1 {
				return nil
			}
			err := fn(i, c)
			i++
			return err
		}
		for k := 0; k < g.n; k++ {
			idx[d] = k
			if err := visit(d + 1); err != nil {
				return err
			}
		}

		return nil
	}

	return visit(0)
}
