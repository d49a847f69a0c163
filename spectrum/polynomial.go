package spectrum

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// DefaultDegree is the regression degree used for the irradiance spectrum.
const DefaultDegree = 6

// Polynomial is a least-squares polynomial in the scaled abscissa
// t = (x − shift)/scale. Immutable once fitted.
type Polynomial struct {
	coef  []float64 // ascending powers of t
	shift float64
	scale float64
}

// FitPolynomial fits a degree-d polynomial to (x, y) by linear least squares.
//
// Implementation:
//   - Stage 1: validate lengths, degree and finiteness.
//   - Stage 2: map x onto [-1, 1] and build the Vandermonde design matrix.
//   - Stage 3: solve once with matrix.LeastSquares (Householder QR).
//
// Errors:
//   - ErrLength, ErrDegree, ErrTooFewSamples, ErrNonFinite, and matrix errors
//     (e.g. matrix.ErrRankDeficient when too few distinct abscissae).
func FitPolynomial(x, y []float64, degree int) (Polynomial, error) {
	// Stage 1 (Validate).
	if len(x) != len(y) {
		return Polynomial{}, fmt.Errorf("fit: %d x, %d y: %w", len(x), len(y), ErrLength)
	}
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("fit: degree %d: %w", degree, ErrDegree)
	}
	if len(x) < degree+1 {
		return Polynomial{}, fmt.Errorf("fit: %d samples for degree %d: %w", len(x), degree, ErrTooFewSamples)
	}
	if !finite(x) || !finite(y) {
		return Polynomial{}, fmt.Errorf("fit: %w", ErrNonFinite)
	}

	// Stage 2 (Prepare): center/scale so powers of t stay in [-1, 1].
	lo, hi := x[0], x[0]
	for _, v := range x {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	p := Polynomial{shift: (lo + hi) / 2, scale: (hi - lo) / 2}
	if p.scale == 0 {
		p.scale = 1 // single abscissa; a degree-0 fit is still well posed
	}

	cols := degree + 1
	data := make([]float64, len(x)*cols)
	for i, v := range x {
		t := (v - p.shift) / p.scale
		pow := 1.0
		for j := 0; j < cols; j++ {
			data[i*cols+j] = pow
			pow *= t
		}
	}
	design, err := matrix.NewDenseFrom(len(x), cols, data)
	if err != nil {
		return Polynomial{}, fmt.Errorf("fit: %w", err)
	}

	// Stage 3 (Solve).
	coef, err := matrix.LeastSquares(design, y)
	if err != nil {
		return Polynomial{}, fmt.Errorf("fit: %w", err)
	}
	p.coef = coef

	return p, nil
}

// Degree returns the polynomial degree.
func (p Polynomial) Degree() int { return len(p.coef) - 1 }

// Coefficients returns a copy of the coefficients in ascending powers of the
// scaled abscissa, together with the shift and scale that define it.
func (p Polynomial) Coefficients() (coef []float64, shift, scale float64) {
	coef = make([]float64, len(p.coef))
	copy(coef, p.coef)

	return coef, p.shift, p.scale
}

// Eval evaluates the polynomial at x (Horner scheme).
func (p Polynomial) Eval(x float64) float64 {
	t := (x - p.shift) / p.scale
	s := 0.0
	for j := len(p.coef) - 1; j >= 0; j-- {
		s = s*t + p.coef[j]
	}

	return s
}

// EvalAll evaluates the polynomial at every x and returns a fresh slice.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}

	return out
}
