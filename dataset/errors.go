package dataset

import "errors"

var (
	// ErrMalformed indicates unreadable CSV or a non-numeric, empty or non-finite cell.
	ErrMalformed = errors.New("dataset: malformed input")

	// ErrShape indicates inconsistent dimensions between inputs.
	ErrShape = errors.New("dataset: shape mismatch")

	// ErrEmpty indicates an input with no data rows.
	ErrEmpty = errors.New("dataset: no data")
)
