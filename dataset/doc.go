// Package dataset holds the measured inputs of a pigment search: solar
// irradiance samples and the empirical dye-mixture absorbance table.
//
// An Empirical value pairs M measured compositions with a W×M absorbance
// matrix whose rows are aligned to the wavelength grid (row w, column j is the
// absorbance of mixture j at wavelength w). Negative absorbance is clamped to
// zero at construction; the result is immutable.
//
// CSV layouts:
//
//   - irradiance: two numeric columns (wavelength in nm, irradiance in
//     W·m⁻²·nm⁻¹); a leading non-numeric header row is skipped.
//   - fractions: a header row, then one row per mixture with a label in the
//     first column and six volume fractions.
//   - absorbance: a header row, then one row per wavelength with one column
//     per mixture, in the same order as the fractions file.
package dataset
