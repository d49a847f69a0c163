// SPDX-License-Identifier: MIT

package synth

import (
	"math"
	"math/rand"
)

const (
	defaultTemperature = 5778.0 // K, effective solar surface temperature
	defaultAmplitude   = 1.6    // W·m⁻²·nm⁻¹, order of the AM1.5G peak
	defaultSeed        = 1
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	temperature float64
	amplitude   float64
	noise       float64
	rng         *rand.Rand
}

func newConfig(opts []Option) config {
	c := config{temperature: defaultTemperature, amplitude: defaultAmplitude}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c
}

// WithTemperature sets the black-body temperature in kelvin. Panics unless > 0.
func WithTemperature(k float64) Option {
	if !(k > 0) || math.IsInf(k, 0) {
		panic("synth: WithTemperature(k<=0)")
	}
	return func(c *config) { c.temperature = k }
}

// WithAmplitude sets the peak irradiance. Panics unless > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("synth: WithAmplitude(a<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithNoise adds zero-mean Gaussian noise with standard deviation sigma.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithSeed makes noise draws reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the noise source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
