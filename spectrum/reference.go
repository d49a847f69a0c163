package spectrum

import (
	"fmt"
	"math"
)

// Reference is the normalized target spectrum on a Grid.
// It keeps both the raw regression values (W·m⁻²·nm⁻¹) and the normalized
// values (integral 1 over the grid). Immutable after construction.
type Reference struct {
	grid       Grid
	fit        Polynomial
	raw        []float64
	normalized []float64
	integral   float64
}

// NewReference fits the irradiance samples, evaluates the fit on grid and
// normalizes it to unit trapezoidal integral.
//
// Errors:
//   - ErrGrid for an empty grid, any FitPolynomial error, and
//     ErrDegenerateIntegral when the integral is not positive and finite.
func NewReference(grid Grid, wavelength, irradiance []float64, degree int) (*Reference, error) {
	if grid.Len() < 2 {
		return nil, fmt.Errorf("reference: %w", ErrGrid)
	}
	fit, err := FitPolynomial(wavelength, irradiance, degree)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}

	return FromPolynomial(grid, fit)
}

// FromPolynomial builds a Reference from an already fitted polynomial.
func FromPolynomial(grid Grid, fit Polynomial) (*Reference, error) {
	if grid.Len() < 2 {
		return nil, fmt.Errorf("reference: %w", ErrGrid)
	}
	raw := fit.EvalAll(grid.points)
	integral, err := grid.Integrate(raw)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	if !(integral > 0) || math.IsNaN(integral) || math.IsInf(integral, 0) {
		return nil, fmt.Errorf("reference: integral %g: %w", integral, ErrDegenerateIntegral)
	}

	normalized := make([]float64, len(raw))
	for i, v := range raw {
		normalized[i] = v / integral
	}

	return &Reference{grid: grid, fit: fit, raw: raw, normalized: normalized, integral: integral}, nil
}

// Grid returns the wavelength domain.
func (r *Reference) Grid() Grid { return r.grid }

// Polynomial returns the fitted regression.
func (r *Reference) Polynomial() Polynomial { return r.fit }

// Integral returns the trapezoidal integral of the raw regression over the grid.
func (r *Reference) Integral() float64 { return r.integral }

// Raw returns a copy of the regression evaluated on the grid.
func (r *Reference) Raw() []float64 { return clone(r.raw) }

// Normalized returns a copy of the unit-integral spectrum.
func (r *Reference) Normalized() []float64 { return clone(r.normalized) }

// Len returns the number of grid points.
func (r *Reference) Len() int { return len(r.raw) }

func clone(vs []float64) []float64 {
	out := make([]float64, len(vs))
	copy(out, vs)

	return out
}
