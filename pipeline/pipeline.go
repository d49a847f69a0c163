package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/pigmentfit/config"
	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/rbf"
	"github.com/katalvlaran/pigmentfit/response"
	"github.com/katalvlaran/pigmentfit/search"
	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// Sink consumes a finished report.
type Sink interface {
	Emit(r *Report) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r *Report) error

// Emit calls f(r).
func (f SinkFunc) Emit(r *Report) error { return f(r) }

// Inputs are the measured data of a run.
type Inputs struct {
	Irradiance dataset.Irradiance
	Empirical  *dataset.Empirical
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger routes stage diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.logger = l }
}

// WithSink appends a report consumer. Panics on nil.
func WithSink(s Sink) Option {
	if s == nil {
		panic("pipeline: WithSink(nil)")
	}
	return func(p *Pipeline) { p.sinks = append(p.sinks, s) }
}

// WithProgress forwards search progress to fn. Panics on nil.
func WithProgress(fn search.ProgressFunc) Option {
	if fn == nil {
		panic("pipeline: WithProgress(nil)")
	}
	return func(p *Pipeline) { p.progress = fn }
}

// Pipeline runs searches for one configuration.
type Pipeline struct {
	cfg      config.Config
	logger   *log.Logger
	sinks    []Sink
	progress search.ProgressFunc
}

// New validates cfg and applies opts.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, logger: log.New(io.Discard, "", 0)}
	for _, o := range opts {
		o(p)
	}

	return p, nil
}

// Config returns the validated configuration.
func (p *Pipeline) Config() config.Config { return p.cfg }

// Run executes every stage and hands the report to each sink in order.
// The report is returned even when a sink fails.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*Report, error) {
	if in.Empirical == nil || in.Irradiance.Len() == 0 {
		return nil, ErrInputs
	}
	start := time.Now()

	// Reference spectrum.
	grid, err := spectrum.NewGrid(p.cfg.MinNM, p.cfg.MaxNM, p.cfg.StepNM)
	if err != nil {
		return nil, err
	}
	ref, err := spectrum.NewReference(grid, in.Irradiance.Wavelength, in.Irradiance.Value, p.cfg.Degree)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("pipeline: reference %s, degree %d, integral %.6g", grid, p.cfg.Degree, ref.Integral())

	// Spectral model.
	if err = in.Empirical.CheckWavelengths(grid.Len()); err != nil {
		return nil, err
	}
	rbfOpts, err := p.cfg.RBFOptions()
	if err != nil {
		return nil, err
	}
	model, err := rbf.NewModel(in.Empirical.Nodes(), in.Empirical.Absorbance(), rbfOpts...)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("pipeline: %s model on %d mixtures, epsilon %.6g", model.Kernel(), model.Nodes(), model.Epsilon())
	ev, err := response.NewEvaluator(model, grid)
	if err != nil {
		return nil, err
	}

	// Composition grid.
	filter, err := p.cfg.FilterValue()
	if err != nil {
		return nil, err
	}
	cgrid, err := simplex.NewGrid(p.cfg.Resolution, filter)
	if err != nil {
		return nil, err
	}

	// Search.
	sopts := []search.Option{search.WithWorkers(p.cfg.Workers), search.WithLogger(p.logger)}
	if p.progress != nil {
		sopts = append(sopts, search.WithProgress(p.progress))
	}
	res, err := search.Run(ctx, search.Problem{Grid: cgrid, Evaluator: ev, Reference: ref}, sopts...)
	if err != nil {
		return nil, err
	}

	report := &Report{Samples: in.Irradiance, Reference: ref, Grid: cgrid, Result: res}
	if report.Optima, err = optima(res, ev); err != nil {
		return nil, err
	}
	for _, o := range report.Optima {
		if !o.Unique() {
			p.logger.Printf("pipeline: %d compositions tie for best %s", len(o.Indices), o.Metric)
		}
	}
	p.logger.Printf("pipeline: done in %s", time.Since(start).Round(time.Millisecond))

	for i, s := range p.sinks {
		if err = s.Emit(report); err != nil {
			return report, fmt.Errorf("sink %d: %w: %w", i, ErrSink, err)
		}
	}

	return report, nil
}

// optima resolves every metric's maximum with compositions and display spectra.
func optima(res *search.Result, ev *response.Evaluator) ([]Optimum, error) {
	out := make([]Optimum, 0, len(search.Metrics))
	for _, m := range search.Metrics {
		o, comps, err := res.Best(m)
		if err != nil {
			return nil, err
		}
		opt := Optimum{Optimum: o, Compositions: comps, LHE: make([][]float64, len(comps))}
		for k, c := range comps {
			lhe, err := ev.LHE(c)
			if err != nil {
				return nil, err
			}
			opt.LHE[k] = response.Clip(lhe)
		}
		out = append(out, opt)
	}

	return out, nil
}
