// SPDX-License-Identifier: MIT

package rbf

import "math"

// Option customizes interpolant construction.
// Constructors validate and panic on meaningless values; New/NewModel never panic.
type Option func(*config)

type config struct {
	kernel    Kernel
	epsilon   float64 // 0 = derive from nodes
	smoothing float64
}

func newConfig(opts []Option) config {
	c := config{kernel: InverseMultiquadric}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithKernel selects the basis function. Panics on an unknown kernel.
func WithKernel(k Kernel) Option {
	if !k.valid() {
		panic("rbf: WithKernel(unknown)")
	}
	return func(c *config) { c.kernel = k }
}

// WithEpsilon fixes the shape parameter instead of deriving it from the nodes.
// Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("rbf: WithEpsilon(eps<=0)")
	}
	return func(c *config) { c.epsilon = eps }
}

// WithSmoothing sets s ≥ 0; the solved system becomes (Φ − s·I)·w = y.
// s = 0 interpolates exactly. Panics on negative or non-finite s.
func WithSmoothing(s float64) Option {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic("rbf: WithSmoothing(s<0)")
	}
	return func(c *config) { c.smoothing = s }
}
