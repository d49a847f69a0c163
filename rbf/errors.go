// SPDX-License-Identifier: MIT

package rbf

import "errors"

var (
	// ErrNoNodes indicates an empty node set.
	ErrNoNodes = errors.New("rbf: no nodes")

	// ErrDimension indicates ragged nodes or a mismatched value/point length.
	ErrDimension = errors.New("rbf: dimension mismatch")

	// ErrNonFinite indicates NaN or ±Inf in nodes, values or query points.
	ErrNonFinite = errors.New("rbf: non-finite input")

	// ErrDuplicateNode indicates two identical nodes with zero smoothing.
	ErrDuplicateNode = errors.New("rbf: duplicate node")

	// ErrSingular indicates a kernel matrix that cannot be factored.
	ErrSingular = errors.New("rbf: singular kernel matrix")

	// ErrKernel indicates an unknown kernel name.
	ErrKernel = errors.New("rbf: unknown kernel")

	// ErrOutOfRange indicates a channel index outside [0, Outputs()).
	ErrOutOfRange = errors.New("rbf: channel out of range")
)
