package simplex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Components is the number of dyes in a blend.
const Components = 6

// Labels are the short dye names used in reports, in component order.
var Labels = [Components]string{"A", "B", "K", "M", "C", "P"}

// Composition holds one volume fraction per dye.
type Composition [Components]float64

// Sum adds the fractions left to right.
func (c Composition) Sum() float64 {
	s := 0.0
	for _, v := range c {
		s += v
	}

	return s
}

// Validate checks every fraction lies in [0,1] and the fractions sum to 1,
// both within tol.
func (c Composition) Validate(tol float64) error {
	for i, v := range c {
		if math.IsNaN(v) || v < -tol || v > 1+tol {
			return fmt.Errorf("%s=%g: %w", Labels[i], v, ErrNotOnSimplex)
		}
	}
	if s := c.Sum(); math.Abs(s-1) > tol {
		return fmt.Errorf("sum %g: %w", s, ErrNotOnSimplex)
	}

	return nil
}

// Slice returns the fractions as a fresh slice.
func (c Composition) Slice() []float64 {
	out := make([]float64, Components)
	copy(out, c[:])

	return out
}

// String renders "A=0.1, B=0, K=0.3, M=0.2, C=0.4, P=0".
func (c Composition) String() string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Labels[i])
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(v, 'g', 3, 64))
	}

	return sb.String()
}

// Parse reads six comma-separated fractions, e.g. "0.2,0.2,0,0.2,0.2,0.2".
// The result is not validated against the simplex; call Validate for that.
func Parse(s string) (Composition, error) {
	var c Composition
	parts := strings.Split(s, ",")
	if len(parts) != Components {
		return c, fmt.Errorf("%q has %d fields, want %d: %w", s, len(parts), Components, ErrParse)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return c, fmt.Errorf("field %d %q: %w", i, p, ErrParse)
		}
		c[i] = v
	}

	return c, nil
}
