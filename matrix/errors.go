// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag via
// matrixErrorf; tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose length differs from the system order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnderdetermined signals a least-squares system with fewer rows than columns.
	ErrUnderdetermined = errors.New("matrix: system has fewer equations than unknowns")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (ingestion, Set, factorization input).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when elimination finds no usable pivot
	// (the system has no unique solution).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRankDeficient is returned by LeastSquares when a column of the design
	// matrix is linearly dependent on the previous ones.
	ErrRankDeficient = errors.New("matrix: design matrix is rank deficient")
)
