// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/simplex"
)

// Result holds every composition and its scores in enumeration order.
type Result struct {
	compositions []simplex.Composition
	scores       []Score
}

// NewResult builds a Result from parallel slices (copied).
func NewResult(compositions []simplex.Composition, scores []Score) (*Result, error) {
	if len(compositions) != len(scores) {
		return nil, fmt.Errorf("%d compositions, %d scores: %w", len(compositions), len(scores), ErrLength)
	}

	return &Result{
		compositions: append([]simplex.Composition(nil), compositions...),
		scores:       append([]Score(nil), scores...),
	}, nil
}

// Len returns the number of evaluated compositions.
func (r *Result) Len() int { return len(r.scores) }

// Composition returns the i-th composition.
func (r *Result) Composition(i int) simplex.Composition { return r.compositions[i] }

// Score returns the i-th score vector.
func (r *Result) Score(i int) Score { return r.scores[i] }

// Values returns the sequence of one metric in enumeration order.
func (r *Result) Values(m Metric) []float64 {
	out := make([]float64, len(r.scores))
	for i, s := range r.scores {
		out[i] = s.Value(m)
	}

	return out
}

// Optimum selects the maximum of metric m.
func (r *Result) Optimum(m Metric) (Optimum, error) {
	return Select(r.Values(m), m)
}

// Optima returns one Optimum per metric, in Metrics order.
func (r *Result) Optima() ([]Optimum, error) {
	out := make([]Optimum, 0, len(Metrics))
	for _, m := range Metrics {
		o, err := r.Optimum(m)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, nil
}

// Best returns the optimum of m and the compositions of every tying index.
func (r *Result) Best(m Metric) (Optimum, []simplex.Composition, error) {
	o, err := r.Optimum(m)
	if err != nil {
		return Optimum{}, nil, err
	}
	comps := make([]simplex.Composition, len(o.Indices))
	for k, i := range o.Indices {
		comps[k] = r.compositions[i]
	}

	return o, comps, nil
}
