package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pigmentfit/simplex"
)

// Empirical is the measured absorbance of M dye mixtures over W wavelengths.
type Empirical struct {
	compositions []simplex.Composition
	absorbance   [][]float64 // W rows × M columns, clamped at 0
}

// NewEmpirical validates and copies its inputs. absorbance[w][j] is mixture j
// at wavelength w. Negative values are clamped to zero.
//
// Errors:
//   - ErrEmpty (no mixtures or no wavelengths), ErrShape (ragged rows or
//     column count != len(compositions)), ErrMalformed (NaN/±Inf).
func NewEmpirical(compositions []simplex.Composition, absorbance [][]float64) (*Empirical, error) {
	m := len(compositions)
	if m == 0 || len(absorbance) == 0 {
		return nil, fmt.Errorf("empirical: %w", ErrEmpty)
	}
	for j, c := range compositions {
		for d, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("empirical: mixture %d %s: %w", j, simplex.Labels[d], ErrMalformed)
			}
		}
	}

	rows := make([][]float64, len(absorbance))
	for w, row := range absorbance {
		if len(row) != m {
			return nil, fmt.Errorf("empirical: row %d has %d columns, want %d: %w", w, len(row), m, ErrShape)
		}
		out := make([]float64, m)
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("empirical: row %d column %d: %w", w, j, ErrMalformed)
			}
			out[j] = math.Max(v, 0)
		}
		rows[w] = out
	}

	comps := make([]simplex.Composition, m)
	copy(comps, compositions)

	return &Empirical{compositions: comps, absorbance: rows}, nil
}

// Mixtures returns M, the number of measured compositions.
func (e *Empirical) Mixtures() int { return len(e.compositions) }

// Wavelengths returns W, the number of absorbance rows.
func (e *Empirical) Wavelengths() int { return len(e.absorbance) }

// Composition returns mixture j.
func (e *Empirical) Composition(j int) simplex.Composition { return e.compositions[j] }

// Compositions returns a copy of the measured compositions.
func (e *Empirical) Compositions() []simplex.Composition {
	out := make([]simplex.Composition, len(e.compositions))
	copy(out, e.compositions)

	return out
}

// Nodes returns the compositions as M fresh coordinate slices.
func (e *Empirical) Nodes() [][]float64 {
	out := make([][]float64, len(e.compositions))
	for j, c := range e.compositions {
		out[j] = c.Slice()
	}

	return out
}

// Absorbance returns a deep copy of the W×M matrix.
func (e *Empirical) Absorbance() [][]float64 {
	out := make([][]float64, len(e.absorbance))
	for w, row := range e.absorbance {
		out[w] = append([]float64(nil), row...)
	}

	return out
}

// Row returns a copy of the absorbance of every mixture at wavelength index w.
func (e *Empirical) Row(w int) []float64 {
	return append([]float64(nil), e.absorbance[w]...)
}

// CheckWavelengths reports ErrShape unless the table has exactly n rows.
func (e *Empirical) CheckWavelengths(n int) error {
	if len(e.absorbance) != n {
		return fmt.Errorf("empirical: %d absorbance rows, grid has %d: %w", len(e.absorbance), n, ErrShape)
	}

	return nil
}
