// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// Model is a bank of W interpolants over the same M nodes.
type Model struct {
	b       *basis
	weights *matrix.Dense // W×M, row w holds channel w's weights
}

// NewModel fits one interpolant per row of targets, where targets[w][j] is
// channel w's value at nodes[j]. The kernel matrix is factored once.
//
// Errors:
//   - as New, plus ErrDimension for ragged targets and ErrNoNodes for W = 0.
//
// Complexity:
//   - Time O(M³ + W·M²), Space O(M² + W·M).
func NewModel(nodes [][]float64, targets [][]float64, opts ...Option) (*Model, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("rbf.NewModel: no channels: %w", ErrNoNodes)
	}
	b, err := newBasis(nodes, newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("rbf.NewModel: %w", err)
	}

	flat := make([]float64, 0, len(targets)*b.m)
	for w, row := range targets {
		wt, err := b.solve(row)
		if err != nil {
			return nil, fmt.Errorf("rbf.NewModel: channel %d: %w", w, err)
		}
		flat = append(flat, wt...)
	}
	weights, err := matrix.NewDenseFrom(len(targets), b.m, flat)
	if err != nil {
		return nil, fmt.Errorf("rbf.NewModel: %w: %w", ErrNonFinite, err)
	}

	return &Model{b: b, weights: weights}, nil
}

// Outputs returns W, the number of channels.
func (m *Model) Outputs() int { return m.weights.Rows() }

// Nodes returns M, the number of training nodes.
func (m *Model) Nodes() int { return m.b.m }

// Dim returns the node dimension.
func (m *Model) Dim() int { return m.b.dim }

// Epsilon returns the resolved shape parameter.
func (m *Model) Epsilon() float64 { return m.b.eps }

// Kernel returns the basis function.
func (m *Model) Kernel() Kernel { return m.b.kernel }

// Eval writes every channel's prediction at x into dst (len W).
// Safe for concurrent use with distinct dst.
func (m *Model) Eval(dst, x []float64) error {
	phi := make([]float64, m.b.m)
	if err := m.b.phiTo(phi, x); err != nil {
		return fmt.Errorf("rbf.Model.Eval: %w", err)
	}
	if err := matrix.MatVecTo(dst, m.weights, phi); err != nil {
		return fmt.Errorf("rbf.Model.Eval: %w", err)
	}

	return nil
}

// Interpolant returns channel w as a standalone interpolant sharing the basis.
func (m *Model) Interpolant(w int) (*Interpolant, error) {
	wt, err := m.weights.Row(w)
	if err != nil {
		return nil, fmt.Errorf("rbf.Model.Interpolant(%d): %w", w, ErrOutOfRange)
	}

	return &Interpolant{b: m.b, weights: wt}, nil
}
