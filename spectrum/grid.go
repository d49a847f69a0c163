package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default analysis domain, matching the measured UV/VIS range.
const (
	DefaultMinWavelength = 340.0 // nm
	DefaultMaxWavelength = 800.0 // nm
	DefaultStep          = 1.0   // nm
)

// stepSlack is the relative mismatch tolerated when a step must divide the span.
const stepSlack = 1e-9

// Grid is an immutable, evenly spaced, strictly increasing wavelength domain.
// The zero value is an empty grid; build one with NewGrid or GridFromPoints.
type Grid struct {
	points []float64
}

// NewGrid returns the grid min, min+step, ..., max.
// The step must divide (max-min) to within a relative 1e-9.
func NewGrid(min, max, step float64) (Grid, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return Grid{}, fmt.Errorf("step %g: %w", step, ErrGrid)
	}
	if err := checkBounds(min, max); err != nil {
		return Grid{}, err
	}
	span := (max - min) / step
	n := int(math.Round(span)) + 1
	if math.Abs(span-float64(n-1)) > stepSlack*math.Max(1, span) {
		return Grid{}, fmt.Errorf("step %g does not divide [%g, %g]: %w", step, min, max, ErrGrid)
	}

	return GridFromPoints(min, max, n)
}

// GridFromPoints returns n evenly spaced points from min to max inclusive,
// the same construction as numpy.linspace (endpoints exact).
func GridFromPoints(min, max float64, n int) (Grid, error) {
	if err := checkBounds(min, max); err != nil {
		return Grid{}, err
	}
	if n < 2 {
		return Grid{}, fmt.Errorf("%d points: %w", n, ErrGrid)
	}

	pts := floats.Span(make([]float64, n), min, max)
	pts[n-1] = max

	return Grid{points: pts}, nil
}

// DefaultGrid returns 340–800 nm by 1 nm.
func DefaultGrid() Grid {
	g, _ := NewGrid(DefaultMinWavelength, DefaultMaxWavelength, DefaultStep)

	return g
}

func checkBounds(min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return fmt.Errorf("bounds [%g, %g]: %w", min, max, ErrGrid)
	}
	if max <= min {
		return fmt.Errorf("bounds [%g, %g]: %w", min, max, ErrGrid)
	}

	return nil
}

// Len returns the number of wavelengths.
func (g Grid) Len() int { return len(g.points) }

// At returns the i-th wavelength. It panics on an out-of-range index, like a slice.
func (g Grid) At(i int) float64 { return g.points[i] }

// Min returns the first wavelength.
func (g Grid) Min() float64 { return g.points[0] }

// Max returns the last wavelength.
func (g Grid) Max() float64 { return g.points[len(g.points)-1] }

// Step returns the spacing between consecutive wavelengths.
func (g Grid) Step() float64 { return (g.Max() - g.Min()) / float64(len(g.points)-1) }

// Points returns a copy of the wavelengths.
func (g Grid) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)

	return out
}

// Index returns the position of wavelength w on the grid, or -1 when w is not
// a grid point (within half a step).
func (g Grid) Index(w float64) int {
	if len(g.points) == 0 {
		return -1
	}
	i := int(math.Round((w - g.Min()) / g.Step()))
	if i < 0 || i >= len(g.points) {
		return -1
	}

	return i
}

// String renders the grid as "[min, max] nm step s (n points)".
func (g Grid) String() string {
	if len(g.points) == 0 {
		return "[] (0 points)"
	}

	return fmt.Sprintf("[%g, %g] nm step %g (%d points)", g.Min(), g.Max(), g.Step(), g.Len())
}
