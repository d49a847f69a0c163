// SPDX-License-Identifier: MIT

package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/rbf"
	"github.com/katalvlaran/pigmentfit/response"
	"github.com/katalvlaran/pigmentfit/search"
	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// rampReference is irradiance λ/1000 on 400..410 nm, fitted with a line.
func rampReference(t testing.TB) *spectrum.Reference {
	t.Helper()
	g, err := spectrum.GridFromPoints(400, 410, 11)
	require.NoError(t, err)
	x := g.Points()
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v / 1000
	}
	ref, err := spectrum.NewReference(g, x, y, 1)
	require.NoError(t, err)

	return ref
}

// linearModel predicts channel w at x as Σ_d coef[w][d]·x_d, so a unit
// composition returns one dye's column bit-for-bit.
type linearModel struct{ coef [][]float64 }

func (m linearModel) Outputs() int { return len(m.coef) }

func (m linearModel) Eval(dst, x []float64) error {
	for w, row := range m.coef {
		s := 0.0
		for d, c := range row {
			s += c * x[d]
		}
		dst[w] = s
	}

	return nil
}

// dyeColumns builds a W×6 table from one absorbance profile per dye.
func dyeColumns(w int, profile func(dye, ch int) float64) [][]float64 {
	out := make([][]float64, w)
	for ch := range out {
		out[ch] = make([]float64, simplex.Components)
		for d := range out[ch] {
			out[ch][d] = profile(d, ch)
		}
	}

	return out
}

// unitProblem builds a two-point grid (the six pure dyes) over ref.
func unitProblem(t testing.TB, ref *spectrum.Reference, model response.Model) search.Problem {
	t.Helper()
	grid, err := simplex.NewGrid(2, simplex.Lattice)
	require.NoError(t, err)
	ev, err := response.NewEvaluator(model, ref.Grid())
	require.NoError(t, err)

	return search.Problem{Grid: grid, Evaluator: ev, Reference: ref}
}

// rbfProblem trains an RBF model on the six pure dyes:
//   - A reproduces the raw reference as its LHE;
//   - K absorbs strongly everywhere;
//   - the rest decrease with wavelength.
func rbfProblem(t testing.TB) search.Problem {
	t.Helper()
	ref := rampReference(t)
	raw := ref.Raw()
	nodes := make([][]float64, simplex.Components)
	for d := range nodes {
		var c simplex.Composition
		c[d] = 1
		nodes[d] = c.Slice()
	}
	targets := dyeColumns(ref.Len(), func(dye, ch int) float64 {
		switch dye {
		case 0:
			return -math.Log10(1 - raw[ch])
		case 2:
			return 3 - 0.01*float64(ch)
		default:
			return 0.1*float64(dye) - 0.01*float64(ch)
		}
	})
	m, err := rbf.NewModel(nodes, targets)
	require.NoError(t, err)

	return unitProblem(t, ref, m)
}
