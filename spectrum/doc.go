// Package spectrum models the target solar-irradiance spectrum.
//
// A Grid is the wavelength domain of analysis: an immutable, evenly spaced,
// increasing sequence (by default 340–800 nm in 1 nm steps, 461 points).
//
// A Reference is built from raw (wavelength, irradiance) samples in three
// deterministic steps:
//
//  1. fit a least-squares polynomial (degree 6 by default) in one closed-form
//     Householder solve,
//  2. evaluate it on the Grid,
//  3. divide by its trapezoidal integral over the Grid, so that the
//     normalized spectrum integrates to exactly 1 (to rounding).
//
// The polynomial is fitted in a centered and scaled abscissa
// t = (λ − center)/halfWidth. The fitted curve is the same as a fit in raw
// wavelengths; only the conditioning of the Vandermonde system changes.
//
//	grid, _ := spectrum.NewGrid(340, 800, 1)
//	ref, err := spectrum.NewReference(grid, wavelengths, irradiance, spectrum.DefaultDegree)
//	weights := ref.Normalized() // ∫ weights dλ = 1
package spectrum
