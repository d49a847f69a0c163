// Package pigmentfit searches six-dye mixtures for the blend whose light
// harvesting efficiency best follows a reference irradiance spectrum.
//
// 🚀 What is in the box?
//
//	• Reference spectra: degree-d polynomial fit of measured irradiance,
//	  normalized to unit area on a fixed wavelength grid (340–800 nm by default)
//	• Composition space: a simplex grid of six volume fractions summing to one
//	• Spectral model: one radial-basis-function interpolant per wavelength
//	  over the measured mixtures, sharing a single LU factorization
//	• Scoring: Pearson correlation, integral and covariance of LHE = 1−10^(−A)
//	  against the reference, with every tied maximum reported
//	• Outputs: text summary, PNG plots and a cobra CLI (cmd/pigmentfit)
//
// Under the hood the work is split across small packages:
//
//	spectrum/  wavelength grid, trapezoid rule, polynomial fit, reference spectrum
//	simplex/   compositions and the lattice/exact composition grids
//	dataset/   CSV ingestion of irradiance, fractions and absorbance tables
//	matrix/    dense matrices, LU and Householder least squares
//	rbf/       kernels, single interpolants and the multi-output model
//	response/  absorbance and LHE spectra for a composition
//	search/    metrics, concurrent exhaustive search, arg-max selection
//	synth/     reproducible synthetic irradiance and dye data
//	config/    defaults, .env files and environment overrides
//	pipeline/  end-to-end run with pluggable report sinks
//	render/    gonum/plot charts of the reference and the metric curves
//
// Quick start:
//
//	pigmentfit demo -n 6
//	pigmentfit run --irradiance sun.csv --fractions fractions.csv --absorbance abs.csv
//
// A worked library example lives in examples/dye_mixture_scenario.go.
package pigmentfit
