// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix (the "nil argument" sentinel).
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every entry of x is finite.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
