// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_lu.go - LU factorization with partial pivoting.
//
// Purpose:
//   - Factor a square system once (P·A = L·U) and solve it for many right-hand
//     sides. The RBF response model shares one kernel matrix across every
//     wavelength, so a single factorization serves hundreds of solves.
//
// Contract:
//   - Factorize copies its input; the LU value is immutable afterwards and
//     safe for concurrent Solve calls.
//   - Pivot choice is the largest |a_ik| in column k, first index on ties.
//     An exactly-zero pivot column reports ErrSingular.

package matrix

import (
	"fmt"
	"math"
)

// LU holds a packed Doolittle factorization with row pivoting.
// lu stores the strict lower part of L (unit diagonal implied) and U on and
// above the diagonal; row i of P·A is row piv[i] of A.
type LU struct {
	n    int
	lu   []float64
	piv  []int
	sign float64
}

// Factorize computes P·A = L·U for a square matrix m.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square) and copy it into a finite-only scratch buffer.
//   - Stage 2: for k=0..n-1 select the pivot row, swap, and eliminate below the diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (with the failing column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(m Matrix) (*LU, error) {
	// Stage 1 (Validate).
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	n := m.Rows()
	lu, err := denseCopy(opFactorize, m)
	if err != nil {
		return nil, err
	}

	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := 1.0

	// Stage 2 (Execute): fixed k→i→j order.
	var i, j, k, p int
	var maxAbs, a, pivot, f float64
	for k = 0; k < n; k++ {
		// 2.1: pivot search in column k.
		p = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(lu[i*n+k]); a > maxAbs {
				maxAbs, p = a, i
			}
		}
		if maxAbs == ZeroPivot {
			return nil, matrixErrorf(opFactorize, fmt.Errorf("column %d: %w", k, ErrSingular))
		}

		// 2.2: swap rows k and p.
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}

		// 2.3: eliminate below the pivot, storing multipliers in place.
		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f
			if f == ZeroSum {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: lu, piv: piv, sign: sign}, nil
}

// Order returns the dimension n of the factored system.
func (f *LU) Order() int { return f.n }

// Det returns det(A) = sign(P) · Π U[i,i].
// Complexity: O(n).
func (f *LU) Det() float64 {
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.lu[i*f.n+i]
	}

	return d
}

// Solve returns x with A·x = b in a fresh slice.
// Complexity: O(n^2).
func (f *LU) Solve(b []float64) ([]float64, error) {
	x := make([]float64, f.n)
	if err := f.SolveTo(x, b); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveTo writes the solution of A·x = b into dst.
// dst and b must both have length n and must not overlap.
//
// Implementation:
//   - Stage 1: permute b into dst (y = P·b).
//   - Stage 2: forward substitution with unit-lower L.
//   - Stage 3: back substitution with U.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func (f *LU) SolveTo(dst, b []float64) error {
	if err := ValidateVecLen(b, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(dst, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	n := f.n

	// Stage 1 (Permute).
	var i, j int
	for i = 0; i < n; i++ {
		dst[i] = b[f.piv[i]]
	}

	// Stage 2 (Forward): L·y = P·b, L has an implicit unit diagonal.
	var sum float64
	for i = 1; i < n; i++ {
		sum = dst[i]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * dst[j]
		}
		dst[i] = sum
	}

	// Stage 3 (Backward): U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = dst[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * dst[j]
		}
		dst[i] = sum / f.lu[i*n+i]
	}

	return nil
}

// Solve is a convenience wrapper: Factorize(m) then Solve(b).
// Prefer Factorize directly when the same matrix is solved repeatedly.
func Solve(m Matrix, b []float64) ([]float64, error) {
	f, err := Factorize(m)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
