// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// Interpolant is a single-output RBF fitted to (node, value) pairs.
type Interpolant struct {
	b       *basis
	weights []float64
}

// New fits an interpolant through values[j] at nodes[j].
//
// Errors:
//   - ErrNoNodes, ErrDimension, ErrNonFinite, ErrDuplicateNode and ErrSingular
//     (both also match matrix.ErrSingular).
func New(nodes [][]float64, values []float64, opts ...Option) (*Interpolant, error) {
	b, err := newBasis(nodes, newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("rbf.New: %w", err)
	}
	w, err := b.solve(values)
	if err != nil {
		return nil, fmt.Errorf("rbf.New: %w", err)
	}

	return &Interpolant{b: b, weights: w}, nil
}

// Eval returns f(x).
func (p *Interpolant) Eval(x []float64) (float64, error) {
	phi := make([]float64, p.b.m)
	if err := p.b.phiTo(phi, x); err != nil {
		return 0, fmt.Errorf("rbf.Eval: %w", err)
	}
	s := matrix.ZeroSum
	for j, w := range p.weights {
		s += w * phi[j]
	}

	return s, nil
}

// Epsilon returns the resolved shape parameter.
func (p *Interpolant) Epsilon() float64 { return p.b.eps }

// Kernel returns the basis function.
func (p *Interpolant) Kernel() Kernel { return p.b.kernel }

// Weights returns a copy of the solved weights.
func (p *Interpolant) Weights() []float64 { return append([]float64(nil), p.weights...) }
