package response

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// Model predicts one absorbance value per output channel at a point.
// *rbf.Model satisfies it.
type Model interface {
	Outputs() int
	Eval(dst, x []float64) error
}

// Evaluator binds a spectral model to a wavelength grid.
type Evaluator struct {
	model Model
	grid  spectrum.Grid
}

// NewEvaluator checks that model produces exactly one value per grid point.
func NewEvaluator(model Model, grid spectrum.Grid) (*Evaluator, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if model.Outputs() != grid.Len() {
		return nil, fmt.Errorf("%d outputs, %d wavelengths: %w", model.Outputs(), grid.Len(), ErrShape)
	}

	return &Evaluator{model: model, grid: grid}, nil
}

// Grid returns the wavelength grid.
func (e *Evaluator) Grid() spectrum.Grid { return e.grid }

// Len returns the spectrum length.
func (e *Evaluator) Len() int { return e.grid.Len() }

// Absorbance returns the predicted absorbance spectrum of c.
func (e *Evaluator) Absorbance(c simplex.Composition) ([]float64, error) {
	dst := make([]float64, e.grid.Len())
	if err := e.AbsorbanceTo(dst, c); err != nil {
		return nil, err
	}

	return dst, nil
}

// AbsorbanceTo writes the absorbance spectrum of c into dst (len = grid length).
func (e *Evaluator) AbsorbanceTo(dst []float64, c simplex.Composition) error {
	if err := e.model.Eval(dst, c[:]); err != nil {
		return fmt.Errorf("absorbance %v: %w", c, err)
	}
	for w, a := range dst {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("absorbance %v at %g nm: %w", c, e.grid.At(w), ErrNonFinite)
		}
	}

	return nil
}

// LHE returns the light-harvesting-efficiency spectrum of c.
func (e *Evaluator) LHE(c simplex.Composition) ([]float64, error) {
	dst := make([]float64, e.grid.Len())
	if err := e.LHETo(dst, c); err != nil {
		return nil, err
	}

	return dst, nil
}

// LHETo writes the LHE spectrum of c into dst.
func (e *Evaluator) LHETo(dst []float64, c simplex.Composition) error {
	if err := e.AbsorbanceTo(dst, c); err != nil {
		return err
	}
	for w, a := range dst {
		v := Efficiency(a)
		if math.IsInf(v, 0) {
			return fmt.Errorf("lhe %v at %g nm: %w", c, e.grid.At(w), ErrNonFinite)
		}
		dst[w] = v
	}

	return nil
}

// Efficiency converts absorbance to LHE: 1 − 10^(−a).
func Efficiency(a float64) float64 { return 1 - math.Pow(10, -a) }

// Clip returns a copy of s with negative values replaced by 0.
func Clip(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = math.Max(v, 0)
	}

	return out
}
