// Package matrix offers the small dense linear-algebra core used by the
// spectral fitting pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Factorize / LU.Solve: LU decomposition with partial pivoting, factored
//     once and solved against many right-hand sides (one per wavelength in
//     the RBF response model).
//   - LeastSquares: Householder QR solve of an overdetermined system
//     (polynomial regression of the irradiance samples).
//   - MatVec / MatVecTo: matrix-vector products for hot evaluation loops.
//
// All kernels validate their inputs with the helpers in validators.go and
// return the package sentinels from errors.go wrapped with an operation tag,
// so callers match them with errors.Is.
//
// Determinism: every loop runs in a fixed i→j→k order; identical inputs give
// bit-identical outputs.
package matrix
