// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pigmentfit/dataset"
)

// Physical constants (SI).
const (
	planckH   = 6.62607015e-34 // J·s
	lightC    = 2.99792458e8   // m/s
	boltzmann = 1.380649e-23   // J/K
)

// Planck returns the unscaled black-body spectral radiance at wavelength nm
// and temperature kelvin, in W·sr⁻¹·m⁻³.
func Planck(nm, kelvin float64) float64 {
	l := nm * 1e-9
	return 2 * planckH * lightC * lightC / (l * l * l * l * l) /
		math.Expm1(planckH*lightC/(l*boltzmann*kelvin))
}

// Irradiance samples a scaled black-body spectrum at n evenly spaced
// wavelengths in [min, max] nm. Without noise the largest sample equals the
// configured amplitude.
//
// Errors:
//   - ErrParam (n < 2, non-finite or non-positive bounds, max <= min).
func Irradiance(min, max float64, n int, opts ...Option) (dataset.Irradiance, error) {
	if n < 2 || !(min > 0) || !(max > min) || math.IsInf(max, 0) {
		return dataset.Irradiance{}, fmt.Errorf("irradiance [%g, %g] n=%d: %w", min, max, n, ErrParam)
	}
	cfg := newConfig(opts)

	wl := floats.Span(make([]float64, n), min, max)
	val := make([]float64, n)
	for i, l := range wl {
		val[i] = Planck(l, cfg.temperature)
	}
	floats.Scale(cfg.amplitude/floats.Max(val), val)
	if cfg.noise > 0 {
		for i := range val {
			val[i] += cfg.rng.NormFloat64() * cfg.noise
		}
	}

	return dataset.Irradiance{Wavelength: wl, Value: val}, nil
}
