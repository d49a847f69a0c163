// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Host the matrix-vector kernels used by evaluation hot loops.
//
// Notes:
//   - Factorizations live in impl_lu.go and impl_least_squares.go.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opFactorize    = "Factorize"
	opSolve        = "LU.Solve"
	opLeastSquares = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x and returns a fresh slice of length Rows(m).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols(m)).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecTo(y, m, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MatVecTo computes dst = m·x without allocating.
// dst must have length Rows(m) and must not alias x.
//
// Implementation:
//   - Stage 1: validate m, len(x)==Cols(m), len(dst)==Rows(m).
//   - Stage 2: Dense fast path over the flat buffer; At fallback otherwise.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MatVecTo(dst []float64, m Matrix, x []float64) error {
	// Stage 1 (Validate).
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, c); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(dst, r); err != nil {
		return matrixErrorf(opMatVec, err)
	}

	// Stage 2 (Execute).
	var i, j int
	var sum float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < r; i++ {
			sum = ZeroSum
			base = i * c
			for j = 0; j < c; j++ {
				sum += d.data[base+j] * x[j]
			}
			dst[i] = sum
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		sum = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		dst[i] = sum
	}

	return nil
}

// denseCopy returns a flat row-major copy of m and rejects non-finite entries.
// Shared by the factorizations so both work on private scratch buffers.
func denseCopy(tag string, m Matrix) ([]float64, error) {
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(tag, err)
				}
				buf[i*c+j] = v
			}
		}
	}
	for k, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(tag, denseErrorf(ctxAt, k/c, k%c, ErrNaNInf))
		}
	}

	return buf, nil
}
