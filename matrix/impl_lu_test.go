// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pigmentfit/matrix"
)

func TestFactorize_SolveMatchesGonum(t *testing.T) {
	t.Parallel()

	const n = 12
	A := randDense(t, n, n, 101)
	b := randVec(n, 202)

	f, err := matrix.Factorize(A)
	require.NoError(t, err)
	x, err := f.Solve(b)
	require.NoError(t, err)

	var want mat.VecDense
	require.NoError(t, want.SolveVec(mat.NewDense(n, n, rowMajor(t, A)), mat.NewVecDense(n, b)))
	assert.InDeltaSlice(t, want.RawVector().Data, x, 1e-9)

	// Residual check: A·x ≈ b.
	got, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, b, got, 1e-10)
}

func TestFactorize_NeedsPivoting(t *testing.T) {
	t.Parallel()

	// Zero leading entry: an unpivoted Doolittle kernel would fail here.
	A := mustDenseFrom(t, 2, 2, []float64{0, 1, 1, 0})
	x, err := matrix.Solve(A, []float64{2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 2}, x, 1e-15)
}

func TestFactorize_Det(t *testing.T) {
	t.Parallel()

	A := mustDenseFrom(t, 3, 3, []float64{
		2, 0, 1,
		1, 3, 2,
		1, 1, 2,
	})
	f, err := matrix.Factorize(A)
	require.NoError(t, err)
	assert.InDelta(t, mat.Det(mat.NewDense(3, 3, rowMajor(t, A))), f.Det(), 1e-12)
	assert.InDelta(t, 6.0, f.Det(), 1e-12)
	assert.Equal(t, 3, f.Order())
}

func TestFactorize_FallbackPathAgrees(t *testing.T) {
	t.Parallel()

	A := randDense(t, 6, 6, 5)
	b := randVec(6, 6)
	fast, err := matrix.Solve(A, b)
	require.NoError(t, err)
	slow, err := matrix.Solve(hide{A}, b)
	require.NoError(t, err)
	assert.Equal(t, fast, slow)
}

func TestFactorize_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Factorize(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Factorize(randDense(t, 2, 3, 1))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	// Duplicate rows: exactly singular.
	_, err = matrix.Factorize(mustDenseFrom(t, 3, 3, []float64{
		1, 2, 3,
		1, 2, 3,
		0, 1, 4,
	}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	f, err := matrix.Factorize(randDense(t, 3, 3, 9))
	require.NoError(t, err)
	_, err = f.Solve([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
