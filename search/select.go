// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Optimum is the maximum of one metric and every index attaining it.
type Optimum struct {
	Metric  Metric
	Value   float64
	Indices []int // ascending, at least one
}

// Unique reports whether exactly one index attains the maximum.
func (o Optimum) Unique() bool { return len(o.Indices) == 1 }

// First returns the lowest tying index.
func (o Optimum) First() int { return o.Indices[0] }

// Select finds max(values) and all indices equal to it, compared exactly.
//
// Errors:
//   - ErrEmptyScores, ErrNonFiniteScore (a NaN or ±Inf entry).
//
// Complexity:
//   - Time O(n), Space O(k) for k ties.
func Select(values []float64, m Metric) (Optimum, error) {
	if len(values) == 0 {
		return Optimum{}, fmt.Errorf("%s: %w", m, ErrEmptyScores)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Optimum{}, fmt.Errorf("%s[%d]=%g: %w", m, i, v, ErrNonFiniteScore)
		}
	}

	best := floats.Max(values)
	opt := Optimum{Metric: m, Value: best}
	for i, v := range values {
		if v == best {
			opt.Indices = append(opt.Indices, i)
		}
	}

	return opt, nil
}
