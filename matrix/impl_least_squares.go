// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_least_squares.go - overdetermined least squares via Householder QR.
//
// Purpose:
//   - Minimize ||A·x − b||₂ for a tall design matrix (rows ≥ cols) in a single
//     closed-form pass, without forming the normal equations AᵀA.
//
// Contract:
//   - A and b are copied; inputs are never mutated.
//   - A column whose reflected diagonal falls below rankEps·max column norm is
//     reported as ErrRankDeficient.

package matrix

import (
	"fmt"
	"math"
)

// rankEps is the relative threshold on |R[k,k]| used by the rank check.
const rankEps = 1e-12

// LeastSquares returns x minimizing ||A·x − b||₂.
//
// Implementation:
//   - Stage 1: validate A (non-nil, rows ≥ cols), len(b) == rows, finite inputs.
//   - Stage 2: for k=0..c-1 build the Householder reflector of column k and apply
//     it to the trailing columns of A and to b (b becomes Qᵀb).
//   - Stage 3: back-substitute R·x = (Qᵀb)[0:c].
//
// Errors:
//   - ErrNilMatrix, ErrUnderdetermined, ErrDimensionMismatch, ErrNaNInf, ErrRankDeficient.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c).
func LeastSquares(a Matrix, b []float64) ([]float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	r, c := a.Rows(), a.Cols()
	if r < c {
		return nil, matrixErrorf(opLeastSquares, fmt.Errorf("%dx%d: %w", r, c, ErrUnderdetermined))
	}
	if err := ValidateVecLen(b, r); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	q, err := denseCopy(opLeastSquares, a)
	if err != nil {
		return nil, err
	}
	rhs := make([]float64, r)
	copy(rhs, b)

	// Scale for the rank check: largest column 2-norm of the original A.
	var i, j, k int
	var s, scale float64
	for j = 0; j < c; j++ {
		s = NormZero
		for i = 0; i < r; i++ {
			s += q[i*c+j] * q[i*c+j]
		}
		scale = math.Max(scale, math.Sqrt(s))
	}

	// Stage 2 (Reflect).
	v := make([]float64, r)
	var norm, alpha, beta, tau float64
	for k = 0; k < c; k++ {
		// 2.1: norm of the active part of column k.
		norm = NormZero
		for i = k; i < r; i++ {
			norm += q[i*c+k] * q[i*c+k]
		}
		norm = math.Sqrt(norm)
		if norm <= rankEps*scale {
			return nil, matrixErrorf(opLeastSquares, fmt.Errorf("column %d: %w", k, ErrRankDeficient))
		}

		// 2.2: reflector v = x − alpha·e1 with alpha = −sign(x0)·||x||.
		alpha = -math.Copysign(norm, q[k*c+k])
		for i = k; i < r; i++ {
			v[i] = q[i*c+k]
		}
		v[k] -= alpha
		beta = NormZero
		for i = k; i < r; i++ {
			beta += v[i] * v[i]
		}
		tau = 2.0 / beta

		// 2.3: apply to trailing columns of A.
		for j = k; j < c; j++ {
			s = ZeroSum
			for i = k; i < r; i++ {
				s += v[i] * q[i*c+j]
			}
			s *= tau
			for i = k; i < r; i++ {
				q[i*c+j] -= s * v[i]
			}
		}

		// 2.4: apply to the right-hand side.
		s = ZeroSum
		for i = k; i < r; i++ {
			s += v[i] * rhs[i]
		}
		s *= tau
		for i = k; i < r; i++ {
			rhs[i] -= s * v[i]
		}
	}

	// Stage 3 (Back substitution) on the upper c×c block.
	x := make([]float64, c)
	for k = c - 1; k >= 0; k-- {
		s = rhs[k]
		for j = k + 1; j < c; j++ {
			s -= q[k*c+j] * x[j]
		}
		x[k] = s / q[k*c+k]
	}

	return x, nil
}
