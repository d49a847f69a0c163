// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"
	"math"
	"strings"
)

// Kernel is a radial basis function φ(r, ε).
type Kernel int

const (
	InverseMultiquadric Kernel = iota
	Multiquadric
	Gaussian
	Linear
	Cubic
	ThinPlate
)

var kernelNames = [...]string{
	InverseMultiquadric: "inverse",
	Multiquadric:        "multiquadric",
	Gaussian:            "gaussian",
	Linear:              "linear",
	Cubic:               "cubic",
	ThinPlate:           "thin_plate",
}

// String returns the kernel's short name.
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// ParseKernel maps a short name to a Kernel. "inverse_multiquadric" is
// accepted as an alias of "inverse".
func ParseKernel(s string) (Kernel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "inverse_multiquadric" {
		return InverseMultiquadric, nil
	}
	for k, name := range kernelNames {
		if s == name {
			return Kernel(k), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrKernel)
}

// Eval returns φ(r, eps). eps is ignored by the scale-free kernels.
func (k Kernel) Eval(r, eps float64) float64 {
	switch k {
	case InverseMultiquadric:
		q := r / eps
		return 1 / math.Sqrt(q*q+1)
	case Multiquadric:
		q := r / eps
		return math.Sqrt(q*q + 1)
	case Gaussian:
		q := r / eps
		return math.Exp(-q * q)
	case Linear:
		return r
	case Cubic:
		return r * r * r
	case ThinPlate:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	default:
		return math.NaN()
	}
}

func (k Kernel) valid() bool { return k >= 0 && int(k) < len(kernelNames) }
