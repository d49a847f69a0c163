// SPDX-License-Identifier: MIT

package search

import "errors"

var (
	// ErrNonFiniteScore indicates a NaN or ±Inf metric value.
	ErrNonFiniteScore = errors.New("search: non-finite score")

	// ErrEmptyScores indicates selection over an empty sequence.
	ErrEmptyScores = errors.New("search: no scores")

	// ErrProblem indicates a missing or inconsistent problem component.
	ErrProblem = errors.New("search: invalid problem")

	// ErrLength indicates a spectrum whose length differs from the reference.
	ErrLength = errors.New("search: spectrum length mismatch")

	// ErrMetric indicates an unknown metric.
	ErrMetric = errors.New("search: unknown metric")
)
