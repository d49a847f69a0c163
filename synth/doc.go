// SPDX-License-Identifier: MIT
// Package synth generates deterministic synthetic inputs for a pigment search.
//
// Purpose:
//   - Demo runs without measured data: a black-body solar irradiance stand-in
//     and six Gaussian dye absorbance bands.
//   - Fixtures for tests and examples: every generator is a pure function of
//     its arguments and seed.
//
// Model:
//   - Irradiance follows Planck's law at a chosen temperature, scaled so the
//     largest sample equals the configured amplitude.
//   - Mixture absorbance follows the Beer–Lambert law for non-interacting dyes:
//     A_mix(λ) = Σ_k f_k · A_k(λ).
//
// Options panic on meaningless values; generators return errors.
package synth
