package pipeline

import "errors"

var (
	// ErrInputs indicates missing run inputs.
	ErrInputs = errors.New("pipeline: missing inputs")

	// ErrSink indicates a sink failure.
	ErrSink = errors.New("pipeline: sink failed")
)
