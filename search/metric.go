// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"strings"
)

// Metric identifies one figure of merit.
type Metric int

const (
	Correlation Metric = iota
	Integral
	Covariance
)

// Metrics lists every metric in report order.
var Metrics = []Metric{Correlation, Integral, Covariance}

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case Correlation:
		return "correlation"
	case Integral:
		return "integral"
	case Covariance:
		return "covariance"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a metric name to a Metric.
func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Metrics {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrMetric)
}

// Score holds the three metric values of one composition.
type Score struct {
	Correlation float64
	Integral    float64
	Covariance  float64
}

// Value returns the score for m, or NaN for an unknown metric.
func (s Score) Value(m Metric) float64 {
	switch m {
	case Correlation:
		return s.Correlation
	case Integral:
		return s.Integral
	case Covariance:
		return s.Covariance
	}

	return nan
}
