package spectrum

import "errors"

var (
	// ErrGrid indicates invalid grid parameters (non-finite bounds, max ≤ min,
	// non-positive step, fewer than two points, or a step that does not divide the span).
	ErrGrid = errors.New("spectrum: invalid wavelength grid")

	// ErrLength indicates paired sequences of different lengths.
	ErrLength = errors.New("spectrum: sequences must have equal length")

	// ErrTooFewSamples indicates fewer samples than polynomial coefficients.
	ErrTooFewSamples = errors.New("spectrum: not enough samples for requested degree")

	// ErrDegree indicates a negative polynomial degree.
	ErrDegree = errors.New("spectrum: polynomial degree must be >= 0")

	// ErrNonFinite indicates a NaN or ±Inf in the input samples.
	ErrNonFinite = errors.New("spectrum: NaN or Inf in samples")

	// ErrUnsorted indicates an integration abscissa that is not strictly increasing.
	ErrUnsorted = errors.New("spectrum: abscissa must be strictly increasing")

	// ErrDegenerateIntegral indicates a non-positive or non-finite integral,
	// which makes normalization impossible or flips the spectrum's sign.
	ErrDegenerateIntegral = errors.New("spectrum: integral is not positive and finite")
)
