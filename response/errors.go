package response

import "errors"

var (
	// ErrNilModel indicates a missing spectral model.
	ErrNilModel = errors.New("response: nil model")

	// ErrShape indicates a model whose output count differs from the grid length.
	ErrShape = errors.New("response: model outputs do not match grid")

	// ErrNonFinite indicates a NaN or ±Inf prediction.
	ErrNonFinite = errors.New("response: non-finite prediction")
)
