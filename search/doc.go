// SPDX-License-Identifier: MIT
// Package search runs the exhaustive composition search and selects optima.
//
// For every composition of a simplex grid, Run evaluates the LHE spectrum
// once and scores it against the reference irradiance with three metrics:
//
//   - Correlation: Pearson correlation with the raw irradiance regression.
//   - Integral:    trapezoidal integral of LHE over the wavelength grid.
//   - Covariance:  sample covariance (n−1 denominator) with the raw regression.
//
// Scores are stored by enumeration index, so results are identical for any
// worker count. A non-finite score stops the run with ErrNonFiniteScore.
//
// Select reports the maximum of one metric together with every index that
// attains it exactly; ties are never broken silently.
package search
