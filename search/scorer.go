// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pigmentfit/spectrum"
)

var nan = math.NaN()

// Scorer computes all metrics of an LHE spectrum against a fixed reference.
// Read-only after construction; safe for concurrent use.
type Scorer struct {
	grid spectrum.Grid
	ref  []float64 // raw regression on the grid
}

// NewScorer caches the reference regression values.
func NewScorer(ref *spectrum.Reference) (*Scorer, error) {
	if ref == nil {
		return nil, fmt.Errorf("nil reference: %w", ErrProblem)
	}

	return &Scorer{grid: ref.Grid(), ref: ref.Raw()}, nil
}

// Score evaluates the three metrics of lhe.
// Correlation and covariance use the raw regression; correlation is scale
// invariant and covariance ordering is unaffected by the normalization
// constant, which spectrum.Reference guarantees is positive.
//
// Errors:
//   - ErrLength, ErrNonFiniteScore (wrapped with the metric name).
func (s *Scorer) Score(lhe []float64) (Score, error) {
	if len(lhe) != len(s.ref) {
		return Score{}, fmt.Errorf("%d values, reference has %d: %w", len(lhe), len(s.ref), ErrLength)
	}
	integral, err := s.grid.Integrate(lhe)
	if err != nil {
		return Score{}, err
	}
	sc := Score{
		Correlation: stat.Correlation(s.ref, lhe, nil),
		Integral:    integral,
		Covariance:  stat.Covariance(s.ref, lhe, nil),
	}
	for _, m := range Metrics {
		if v := sc.Value(m); math.IsNaN(v) || math.IsInf(v, 0) {
			return sc, fmt.Errorf("%s=%g: %w", m, v, ErrNonFiniteScore)
		}
	}

	return sc, nil
}
