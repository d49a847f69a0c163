package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Trapezoid returns the trapezoidal-rule integral of y sampled at x.
// gonum's integrate.Trapezoidal panics on malformed input; Trapezoid reports
// the same conditions as errors instead.
//
// Errors:
//   - ErrLength (len(x) != len(y)), ErrGrid (fewer than two samples),
//     ErrUnsorted (x not strictly increasing).
func Trapezoid(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("trapezoid: %d abscissae, %d ordinates: %w", len(x), len(y), ErrLength)
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("trapezoid: %d samples: %w", len(x), ErrGrid)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return 0, fmt.Errorf("trapezoid: x[%d]=%g after %g: %w", i, x[i], x[i-1], ErrUnsorted)
		}
	}

	return integrate.Trapezoidal(x, y), nil
}

// Integrate returns the trapezoidal integral of y over the grid.
// y must have one value per grid point.
func (g Grid) Integrate(y []float64) (float64, error) {
	if len(g.points) < 2 {
		return 0, fmt.Errorf("integrate: %d-point grid: %w", len(g.points), ErrGrid)
	}
	if len(y) != len(g.points) {
		return 0, fmt.Errorf("integrate: %d values on %d-point grid: %w", len(y), len(g.points), ErrLength)
	}

	return integrate.Trapezoidal(g.points, y), nil
}

// finite reports whether every value is finite.
func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
