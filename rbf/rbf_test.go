// SPDX-License-Identifier: MIT

package rbf_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/matrix"
	"github.com/katalvlaran/pigmentfit/rbf"
)

const tol = 1e-9

func unitVectors(d int) [][]float64 {
	out := make([][]float64, d)
	for i := range out {
		out[i] = make([]float64, d)
		out[i][i] = 1
	}

	return out
}

func TestKernel_Eval(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(5), rbf.InverseMultiquadric.Eval(1, 0.5), tol)
	assert.InDelta(t, math.Sqrt(5), rbf.Multiquadric.Eval(1, 0.5), tol)
	assert.InDelta(t, math.Exp(-1), rbf.Gaussian.Eval(2, 2), tol)
	assert.Equal(t, 3.0, rbf.Linear.Eval(3, 99))
	assert.Equal(t, 8.0, rbf.Cubic.Eval(2, 99))
	assert.Equal(t, 0.0, rbf.ThinPlate.Eval(0, 1))
	assert.InDelta(t, 4*math.Log(2), rbf.ThinPlate.Eval(2, 1), tol)
	assert.True(t, math.IsNaN(rbf.Kernel(42).Eval(1, 1)))
}

func TestParseKernel(t *testing.T) {
	for _, k := range []rbf.Kernel{rbf.InverseMultiquadric, rbf.Multiquadric, rbf.Gaussian, rbf.Linear, rbf.Cubic, rbf.ThinPlate} {
		got, err := rbf.ParseKernel(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := rbf.ParseKernel("Inverse_Multiquadric")
	require.NoError(t, err)
	assert.Equal(t, rbf.InverseMultiquadric, got)

	_, err = rbf.ParseKernel("quintic")
	assert.ErrorIs(t, err, rbf.ErrKernel)
}

func TestNew_OneDimensionClosedForm(t *testing.T) {
	// Nodes 0 and 1, values 0 and 1. Default ε = (1/2)^1 = 0.5 and
	// a = φ(1) = 1/√5, so w = [−a, 1]/(1−a²) and f(0.5) = (1/√2)/(1+a).
	p, err := rbf.New([][]float64{{0}, {1}}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.Epsilon(), tol)
	assert.Equal(t, rbf.InverseMultiquadric, p.Kernel())

	a := 1 / math.Sqrt(5)
	got, err := p.Eval([]float64{0.5})
	require.NoError(t, err)
	assert.InDelta(t, (1/math.Sqrt2)/(1+a), got, tol)

	w := p.Weights()
	assert.InDelta(t, -a/(1-a*a), w[0], tol)
	assert.InDelta(t, 1/(1-a*a), w[1], tol)
}

func TestNew_ReproducesNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	nodes := make([][]float64, 12)
	values := make([]float64, len(nodes))
	for i := range nodes {
		nodes[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
		values[i] = rng.NormFloat64()
	}

	for _, k := range []rbf.Kernel{rbf.InverseMultiquadric, rbf.Multiquadric, rbf.Gaussian, rbf.Linear} {
		p, err := rbf.New(nodes, values, rbf.WithKernel(k))
		require.NoError(t, err, k.String())
		for i, n := range nodes {
			got, err := p.Eval(n)
			require.NoError(t, err)
			assert.InDelta(t, values[i], got, 1e-7, "%v node %d", k, i)
		}
	}
}

func TestNew_DefaultEpsilonOnSimplexVertices(t *testing.T) {
	// Six unit vectors: every extent is 1, so ε = (1/6)^(1/6).
	p, err := rbf.New(unitVectors(6), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(1.0/6, 1.0/6), p.Epsilon(), tol)

	p, err = rbf.New(unitVectors(6), []float64{1, 2, 3, 4, 5, 6}, rbf.WithEpsilon(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Epsilon())
}

func TestNew_SingleNodeIsConstant(t *testing.T) {
	p, err := rbf.New([][]float64{{0.3, 0.7}}, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Epsilon())

	got, err := p.Eval([]float64{0.3, 0.7})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, tol)
}

func TestNew_Errors(t *testing.T) {
	_, err := rbf.New(nil, nil)
	assert.ErrorIs(t, err, rbf.ErrNoNodes)

	_, err = rbf.New([][]float64{{0, 1}, {1}}, []float64{0, 1})
	assert.ErrorIs(t, err, rbf.ErrDimension)

	_, err = rbf.New([][]float64{{0}, {1}}, []float64{0})
	assert.ErrorIs(t, err, rbf.ErrDimension)

	_, err = rbf.New([][]float64{{0}, {math.NaN()}}, []float64{0, 1})
	assert.ErrorIs(t, err, rbf.ErrNonFinite)

	_, err = rbf.New([][]float64{{0}, {1}}, []float64{0, math.Inf(-1)})
	assert.ErrorIs(t, err, rbf.ErrNonFinite)

	_, err = rbf.New([][]float64{{0, 1}, {0.5, 0.5}, {0, 1}}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, rbf.ErrDuplicateNode)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	p, err := rbf.New([][]float64{{0}, {1}}, []float64{0, 1})
	require.NoError(t, err)
	_, err = p.Eval([]float64{0, 1})
	assert.ErrorIs(t, err, rbf.ErrDimension)
	_, err = p.Eval([]float64{math.NaN()})
	assert.ErrorIs(t, err, rbf.ErrNonFinite)
}

func TestNew_SingularKernelMatrix(t *testing.T) {
	// Thin-plate on two nodes at distance 1: φ(0) = φ(1) = 0.
	_, err := rbf.New([][]float64{{0}, {1}}, []float64{0, 1}, rbf.WithKernel(rbf.ThinPlate))
	assert.ErrorIs(t, err, rbf.ErrSingular)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestNew_SmoothingAllowsDuplicates(t *testing.T) {
	p, err := rbf.New([][]float64{{0}, {0}, {1}}, []float64{1, 1, 2}, rbf.WithSmoothing(0.1))
	require.NoError(t, err)
	v, err := p.Eval([]float64{0})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v))
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { rbf.WithEpsilon(0) })
	assert.Panics(t, func() { rbf.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { rbf.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { rbf.WithSmoothing(-1) })
	assert.Panics(t, func() { rbf.WithKernel(rbf.Kernel(-1)) })
}

func TestModel_MatchesPerChannelInterpolants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	nodes := unitVectors(6)
	nodes = append(nodes, []float64{0.5, 0.5, 0, 0, 0, 0}, []float64{0, 0, 0.5, 0, 0, 0.5})
	const w = 25
	targets := make([][]float64, w)
	for i := range targets {
		targets[i] = make([]float64, len(nodes))
		for j := range targets[i] {
			targets[i][j] = rng.Float64()
		}
	}

	m, err := rbf.NewModel(nodes, targets)
	require.NoError(t, err)
	assert.Equal(t, w, m.Outputs())
	assert.Equal(t, len(nodes), m.Nodes())
	assert.Equal(t, 6, m.Dim())
	assert.Equal(t, rbf.InverseMultiquadric, m.Kernel())

	x := []float64{0.2, 0.2, 0.1, 0.1, 0.2, 0.2}
	got := make([]float64, w)
	require.NoError(t, m.Eval(got, x))

	for c := 0; c < w; c++ {
		p, err := rbf.New(nodes, targets[c])
		require.NoError(t, err)
		want, err := p.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, want, got[c], 1e-9, "channel %d", c)

		q, err := m.Interpolant(c)
		require.NoError(t, err)
		v, err := q.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, got[c], v, 1e-12)
	}

	// Exact reproduction at every node.
	for j, n := range nodes {
		require.NoError(t, m.Eval(got, n))
		for c := 0; c < w; c++ {
			assert.InDelta(t, targets[c][j], got[c], 1e-9)
		}
	}
}

func TestModel_Errors(t *testing.T) {
	_, err := rbf.NewModel(unitVectors(2), nil)
	assert.ErrorIs(t, err, rbf.ErrNoNodes)

	_, err = rbf.NewModel(unitVectors(2), [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, rbf.ErrDimension)

	m, err := rbf.NewModel(unitVectors(2), [][]float64{{1, 2}})
	require.NoError(t, err)
	assert.ErrorIs(t, m.Eval(make([]float64, 3), []float64{1, 0}), matrix.ErrDimensionMismatch)
	_, err = m.Interpolant(1)
	assert.ErrorIs(t, err, rbf.ErrOutOfRange)
}
