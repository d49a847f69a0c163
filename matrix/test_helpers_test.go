// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// mustDenseFrom builds an r×c *Dense from row-major data or fails the test.
func mustDenseFrom(tb testing.TB, r, c int, data []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// randDense fills an r×c matrix with uniform values in [-1,1) from a seeded source.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return mustDenseFrom(tb, r, c, data)
}

// randVec returns n uniform values in [-1,1) from a seeded source.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// rowMajor flattens a Matrix for handing to gonum.
func rowMajor(tb testing.TB, m matrix.Matrix) []float64 {
	tb.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out = append(out, v)
		}
	}

	return out
}
