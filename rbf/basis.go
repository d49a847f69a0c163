// SPDX-License-Identifier: MIT
// Package: rbf
//
// basis.go - node storage, ε rule and the shared kernel factorization.

package rbf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// basis is the node set with its kernel and the factored kernel matrix.
// Immutable after newBasis.
type basis struct {
	nodes  []float64 // M×D row-major
	m, dim int
	kernel Kernel
	eps    float64
	lu     *matrix.LU
}

// newBasis validates the nodes, resolves ε, builds Φ − s·I and factors it.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular, finite nodes.
//   - Stage 2: reject duplicate nodes when s = 0.
//   - Stage 3: resolve ε (option or geometric-mean rule).
//   - Stage 4: fill the M×M kernel matrix and LU-factor it.
//
// Complexity:
//   - Time O(M²·D + M³), Space O(M²).
func newBasis(nodes [][]float64, cfg config) (*basis, error) {
	// Stage 1 (Validate).
	m := len(nodes)
	if m == 0 {
		return nil, ErrNoNodes
	}
	dim := len(nodes[0])
	if dim == 0 {
		return nil, fmt.Errorf("node 0 is empty: %w", ErrDimension)
	}
	flat := make([]float64, 0, m*dim)
	for i, n := range nodes {
		if len(n) != dim {
			return nil, fmt.Errorf("node %d has %d coordinates, want %d: %w", i, len(n), dim, ErrDimension)
		}
		for _, v := range n {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("node %d: %w", i, ErrNonFinite)
			}
		}
		flat = append(flat, n...)
	}
	b := &basis{nodes: flat, m: m, dim: dim, kernel: cfg.kernel}

	// Stage 2 (Duplicates).
	if cfg.smoothing == 0 {
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				if b.dist(i, b.node(j)) == 0 {
					return nil, fmt.Errorf("nodes %d and %d: %w: %w", i, j, ErrDuplicateNode, matrix.ErrSingular)
				}
			}
		}
	}

	// Stage 3 (Shape parameter).
	b.eps = cfg.epsilon
	if b.eps == 0 {
		b.eps = defaultEpsilon(flat, m, dim)
	}

	// Stage 4 (Factor).
	phi, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			v = b.kernel.Eval(b.dist(i, b.node(j)), b.eps)
			if i == j {
				v -= cfg.smoothing
			}
			if err = phi.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("kernel matrix: %w", ErrNonFinite)
			}
		}
	}
	if b.lu, err = matrix.Factorize(phi); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	return b, nil
}

// defaultEpsilon is (Π edges / M)^(1/len(edges)) over the non-zero
// per-dimension extents. A cloud with no extent (a single node) gets ε = 1.
func defaultEpsilon(flat []float64, m, dim int) float64 {
	prod := 1.0
	k := 0
	for d := 0; d < dim; d++ {
		lo, hi := flat[d], flat[d]
		for i := 1; i < m; i++ {
			v := flat[i*dim+d]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if e := hi - lo; e != 0 {
			prod *= e
			k++
		}
	}
	if k == 0 {
		return 1
	}

	return math.Pow(prod/float64(m), 1/float64(k))
}

func (b *basis) node(i int) []float64 { return b.nodes[i*b.dim : (i+1)*b.dim] }

// dist is the Euclidean distance between node i and x.
func (b *basis) dist(i int, x []float64) float64 {
	s := 0.0
	base := i * b.dim
	for d, xv := range x {
		diff := b.nodes[base+d] - xv
		s += diff * diff
	}

	return math.Sqrt(s)
}

// phiTo fills dst[j] = φ(‖x − n_j‖, ε).
func (b *basis) phiTo(dst, x []float64) error {
	if len(x) != b.dim {
		return fmt.Errorf("point has %d coordinates, want %d: %w", len(x), b.dim, ErrDimension)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("point: %w", ErrNonFinite)
		}
	}
	for j := 0; j < b.m; j++ {
		dst[j] = b.kernel.Eval(b.dist(j, x), b.eps)
	}

	return nil
}

// solve returns the weights for one channel of training values.
func (b *basis) solve(values []float64) ([]float64, error) {
	if len(values) != b.m {
		return nil, fmt.Errorf("%d values for %d nodes: %w", len(values), b.m, ErrDimension)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("values: %w", ErrNonFinite)
		}
	}

	return b.lu.Solve(values)
}
