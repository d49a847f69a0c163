// SPDX-License-Identifier: MIT

package search

import (
	"io"
	"log"
)

// Option customizes Run.
// Constructors panic on meaningless values; Run itself never panics.
type Option func(*config)

// ProgressFunc receives the number of evaluated compositions and the total.
// Calls are serialized.
type ProgressFunc func(done, total int)

type config struct {
	workers  int
	progress ProgressFunc
	logger   *log.Logger
}

func newConfig(opts []Option) config {
	c := config{workers: 1, logger: log.New(io.Discard, "", 0)}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithWorkers sets the number of evaluation goroutines (default 1).
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("search: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithProgress installs a progress callback. Panics on nil.
func WithProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic("search: WithProgress(nil)")
	}
	return func(c *config) { c.progress = fn }
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
