package simplex

import "errors"

var (
	// ErrResolution indicates an axis resolution N < 2.
	ErrResolution = errors.New("simplex: resolution must be >= 2")

	// ErrEmptyGrid indicates that no tuple passed the membership filter.
	ErrEmptyGrid = errors.New("simplex: grid is empty")

	// ErrFilter indicates an unknown membership filter.
	ErrFilter = errors.New("simplex: unknown filter")

	// ErrNotOnSimplex indicates a composition outside [0,1]^6 or not summing to 1.
	ErrNotOnSimplex = errors.New("simplex: composition is not on the simplex")

	// ErrParse indicates a malformed textual composition.
	ErrParse = errors.New("simplex: malformed composition")
)
