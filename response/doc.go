// Package response maps a dye composition to its predicted light-harvesting
// efficiency (LHE) spectrum.
//
// The Evaluator queries a multi-output spectral model for the absorbance A(λ)
// at every grid wavelength and converts it with LHE = 1 − 10^(−A). Each call
// is a pure function of the composition; the evaluator holds no mutable
// state and may be shared between goroutines.
package response
