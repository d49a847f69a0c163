// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the finite-only numeric policy on ingestion (NewDenseFrom, Set).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"           // method tag used in error wrappers
	ctxSet  = "Set"          // method tag used in error wrappers
	ctxRow  = "Row"          // method tag used in error wrappers
	ctxFrom = "NewDenseFrom" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice.
// The slice is copied, so later mutation by the caller does not leak in.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: reject NaN/±Inf entries (finite-only ingestion policy).
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (with coordinates).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	// Stage 1 (Validate shape).
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFrom, len(data), rows*cols, ErrDimensionMismatch)
	}

	// Stage 2 (Validate values): a single pass in row-major order.
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}

	// Stage 3 (Copy).
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Rejects NaN/±Inf with ErrNaNInf so factorization inputs stay finite.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
