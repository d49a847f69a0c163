// SPDX-License-Identifier: MIT
// Package: search
//
// run.go - exhaustive evaluation of a composition grid.
//
// Contract:
//   - Each composition is evaluated exactly once; its LHE spectrum feeds all
//     three metrics.
//   - scores[i] belongs to the i-th composition in grid order regardless of
//     worker count or scheduling.
//   - The first error (evaluation, non-finite score, cancellation) ends the run.

package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pigmentfit/response"
	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// Problem bundles the read-only inputs of a search.
type Problem struct {
	Grid      *simplex.Grid
	Evaluator *response.Evaluator
	Reference *spectrum.Reference
}

func (p Problem) validate() error {
	switch {
	case p.Grid == nil:
		return fmt.Errorf("nil grid: %w", ErrProblem)
	case p.Evaluator == nil:
		return fmt.Errorf("nil evaluator: %w", ErrProblem)
	case p.Reference == nil:
		return fmt.Errorf("nil reference: %w", ErrProblem)
	case p.Evaluator.Len() != p.Reference.Len():
		return fmt.Errorf("evaluator has %d wavelengths, reference %d: %w",
			p.Evaluator.Len(), p.Reference.Len(), ErrProblem)
	}

	return nil
}

type job struct {
	i int
	c simplex.Composition
}

// Run scores every composition of p.Grid.
//
// Implementation:
//   - Stage 1: validate the problem and build the scorer.
//   - Stage 2: evaluate sequentially, or fan out to an errgroup of workers
//     fed by the grid walk; each worker owns one LHE scratch buffer.
//   - Stage 3: assemble the Result in enumeration order.
//
// Errors:
//   - ErrProblem, response errors and ErrNonFiniteScore wrapped with the
//     composition index, ctx.Err() on cancellation.
func Run(ctx context.Context, p Problem, opts ...Option) (*Result, error) {
	// Stage 1 (Validate).
	if err := p.validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	scorer, err := NewScorer(p.Reference)
	if err != nil {
		return nil, err
	}

	total := p.Grid.Len()
	res := &Result{
		compositions: make([]simplex.Composition, total),
		scores:       make([]Score, total),
	}
	cfg.logger.Printf("search: %d compositions (N=%d, step %.4g), %d worker(s)",
		total, p.Grid.N(), p.Grid.Step(), cfg.workers)
	start := time.Now()

	var (
		done int64
		pmu  sync.Mutex
	)
	tick := func() {
		n := atomic.AddInt64(&done, 1)
		if cfg.progress == nil {
			return
		}
		pmu.Lock()
		cfg.progress(int(n), total)
		pmu.Unlock()
	}

	// evaluate scores one composition into res using a caller-owned buffer.
	evaluate := func(buf []float64, j job) error {
		if err := p.Evaluator.LHETo(buf, j.c); err != nil {
			return fmt.Errorf("composition %d: %w", j.i, err)
		}
		sc, err := scorer.Score(buf)
		if err != nil {
			return fmt.Errorf("composition %d (%v): %w", j.i, j.c, err)
		}
		res.compositions[j.i] = j.c
		res.scores[j.i] = sc
		tick()

		return nil
	}

	// Stage 2 (Execute).
	if cfg.workers == 1 {
		buf := make([]float64, p.Evaluator.Len())
		err = p.Grid.Each(func(i int, c simplex.Composition) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return evaluate(buf, job{i: i, c: c})
		})
	} else {
		err = runParallel(ctx, p, cfg.workers, evaluate)
	}
	if err != nil {
		cfg.logger.Printf("search: stopped after %d/%d: %v", atomic.LoadInt64(&done), total, err)
		return nil, err
	}

	// Stage 3 (Finish).
	cfg.logger.Printf("search: evaluated %d compositions in %s", total, time.Since(start).Round(time.Millisecond))

	return res, nil
}

// runParallel feeds grid members to workers over a channel. Workers write
// disjoint indices, so no locking is needed on the result slices.
func runParallel(ctx context.Context, p Problem, workers int, evaluate func([]float64, job) error) error {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, workers)

	g.Go(func() error {
		defer close(jobs)
		return p.Grid.Each(func(i int, c simplex.Composition) error {
			select {
			case jobs <- job{i: i, c: c}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			buf := make([]float64, p.Evaluator.Len())
			for j := range jobs {
				if err := evaluate(buf, j); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// errgroup cancels gctx only on error; a parent cancellation that raced
	// with the last job still has to surface.
	return ctx.Err()
}
