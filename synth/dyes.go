// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// Band is a Gaussian absorbance band: Peak·exp(−½((λ−Center)/Width)²).
type Band struct {
	Center float64 // nm
	Width  float64 // nm, standard deviation
	Peak   float64 // absorbance at Center
}

// At evaluates the band at wavelength nm.
func (b Band) At(nm float64) float64 {
	z := (nm - b.Center) / b.Width
	return b.Peak * math.Exp(-0.5*z*z)
}

// DefaultBands spreads six dyes across the visible range, blue to red.
func DefaultBands() [simplex.Components]Band {
	return [simplex.Components]Band{
		{Center: 430, Width: 30, Peak: 0.9},
		{Center: 480, Width: 35, Peak: 1.1},
		{Center: 530, Width: 30, Peak: 1.0},
		{Center: 580, Width: 40, Peak: 0.8},
		{Center: 630, Width: 35, Peak: 1.2},
		{Center: 680, Width: 45, Peak: 0.7},
	}
}

// Dyes holds the pure-dye absorbance spectra on a wavelength grid.
type Dyes struct {
	grid  spectrum.Grid
	bands [simplex.Components]Band
	pure  [simplex.Components][]float64
}

// NewDyes samples each band on grid.
//
// Errors:
//   - ErrParam for a grid with fewer than two points or a band with a
//     non-positive width or negative peak.
func NewDyes(grid spectrum.Grid, bands [simplex.Components]Band) (*Dyes, error) {
	if grid.Len() < 2 {
		return nil, fmt.Errorf("dyes: %d-point grid: %w", grid.Len(), ErrParam)
	}
	d := &Dyes{grid: grid, bands: bands}
	for k, b := range bands {
		if !(b.Width > 0) || !(b.Peak >= 0) {
			return nil, fmt.Errorf("dyes: band %s %+v: %w", simplex.Labels[k], b, ErrParam)
		}
		d.pure[k] = make([]float64, grid.Len())
		for w := range d.pure[k] {
			d.pure[k][w] = b.At(grid.At(w))
		}
	}

	return d, nil
}

// Grid returns the sampling grid.
func (d *Dyes) Grid() spectrum.Grid { return d.grid }

// Band returns dye k's band.
func (d *Dyes) Band(k int) Band { return d.bands[k] }

// Absorbance returns the Beer–Lambert mixture absorbance of c.
func (d *Dyes) Absorbance(c simplex.Composition) []float64 {
	out := make([]float64, d.grid.Len())
	for k, f := range c {
		if f == 0 {
			continue
		}
		for w, a := range d.pure[k] {
			out[w] += f * a
		}
	}

	return out
}

// Empirical simulates measuring every composition: one absorbance column per
// mixture, plus Gaussian noise when WithNoise is set.
func (d *Dyes) Empirical(compositions []simplex.Composition, opts ...Option) (*dataset.Empirical, error) {
	if len(compositions) == 0 {
		return nil, fmt.Errorf("empirical: no compositions: %w", ErrParam)
	}
	cfg := newConfig(opts)

	table := make([][]float64, d.grid.Len())
	for w := range table {
		table[w] = make([]float64, len(compositions))
	}
	for j, c := range compositions {
		for w, a := range d.Absorbance(c) {
			if cfg.noise > 0 {
				a += cfg.rng.NormFloat64() * cfg.noise
			}
			table[w][j] = a
		}
	}

	return dataset.NewEmpirical(compositions, table)
}

// DesignCompositions returns a measurement design over six dyes: the six
// pure dyes, the fifteen equal binary blends and the equal six-way blend.
func DesignCompositions() []simplex.Composition {
	out := make([]simplex.Composition, 0, 22)
	for k := 0; k < simplex.Components; k++ {
		var c simplex.Composition
		c[k] = 1
		out = append(out, c)
	}
	for i := 0; i < simplex.Components; i++ {
		for j := i + 1; j < simplex.Components; j++ {
			var c simplex.Composition
			c[i], c[j] = 0.5, 0.5
			out = append(out, c)
		}
	}
	var all simplex.Composition
	for k := range all {
		all[k] = 1.0 / simplex.Components
	}

	return append(out, all)
}
