package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/matrix"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// planck returns a black-body-shaped curve in arbitrary units, a stand-in for
// the measured AM1.5G samples.
func planck(nm float64) float64 {
	const c2 = 1.4388e7 // nm·K
	const temp = 5778.0
	return 1 / (math.Pow(nm, 5) * (math.Exp(c2/(nm*temp)) - 1)) * 1e17
}

func irradianceSamples(lo, hi float64, n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		y[i] = planck(x[i])
	}

	return x, y
}

func TestFitPolynomial_RecoversExactPolynomial(t *testing.T) {
	// y = 1 − 2x + 0.5x³ sampled on [300, 900] is reproduced by a cubic fit.
	x := make([]float64, 25)
	y := make([]float64, 25)
	f := func(v float64) float64 {
		u := v / 100
		return 1 - 2*u + 0.5*u*u*u
	}
	for i := range x {
		x[i] = 300 + 25*float64(i)
		y[i] = f(x[i])
	}
	p, err := spectrum.FitPolynomial(x, y, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Degree())
	for _, v := range []float64{310, 555, 899} {
		assert.InDelta(t, f(v), p.Eval(v), 1e-9*math.Abs(f(v))+1e-9)
	}
}

func TestFitPolynomial_Errors(t *testing.T) {
	_, err := spectrum.FitPolynomial([]float64{1, 2}, []float64{1}, 1)
	assert.ErrorIs(t, err, spectrum.ErrLength)

	_, err = spectrum.FitPolynomial([]float64{1, 2}, []float64{1, 2}, -1)
	assert.ErrorIs(t, err, spectrum.ErrDegree)

	_, err = spectrum.FitPolynomial([]float64{1, 2}, []float64{1, 2}, 6)
	assert.ErrorIs(t, err, spectrum.ErrTooFewSamples)

	_, err = spectrum.FitPolynomial([]float64{1, 2, math.NaN()}, []float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, spectrum.ErrNonFinite)

	// Three samples at one wavelength cannot determine a quadratic.
	_, err = spectrum.FitPolynomial([]float64{5, 5, 5}, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, matrix.ErrRankDeficient)
}

func TestNewReference_UnitIntegral(t *testing.T) {
	x, y := irradianceSamples(280, 4000, 400)
	grid := spectrum.DefaultGrid()

	ref, err := spectrum.NewReference(grid, x, y, spectrum.DefaultDegree)
	require.NoError(t, err)
	assert.Equal(t, grid.Len(), ref.Len())

	integral, err := spectrum.Trapezoid(grid.Points(), ref.Normalized())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, integral, 1e-12)

	// Normalized = Raw / Integral, pointwise.
	raw, norm := ref.Raw(), ref.Normalized()
	for i := range raw {
		assert.InDelta(t, raw[i]/ref.Integral(), norm[i], 1e-15)
	}
}

func TestNewReference_Deterministic(t *testing.T) {
	x, y := irradianceSamples(280, 4000, 200)
	grid := spectrum.DefaultGrid()

	a, err := spectrum.NewReference(grid, x, y, spectrum.DefaultDegree)
	require.NoError(t, err)
	b, err := spectrum.NewReference(grid, x, y, spectrum.DefaultDegree)
	require.NoError(t, err)
	assert.Equal(t, a.Normalized(), b.Normalized())
}

func TestNewReference_DegenerateIntegral(t *testing.T) {
	// Zero irradiance fits the zero polynomial exactly.
	x := []float64{300, 400, 500, 600, 700}
	y := make([]float64, len(x))

	_, err := spectrum.NewReference(spectrum.DefaultGrid(), x, y, 2)
	assert.ErrorIs(t, err, spectrum.ErrDegenerateIntegral)
}

func TestNewReference_NegativeIntegral(t *testing.T) {
	// A negative spectrum would invert the sign of every normalized value.
	x := []float64{300, 400, 500, 600, 700}
	y := []float64{-1, -2, -3, -4, -5}

	_, err := spectrum.NewReference(spectrum.DefaultGrid(), x, y, 1)
	assert.ErrorIs(t, err, spectrum.ErrDegenerateIntegral)
}
