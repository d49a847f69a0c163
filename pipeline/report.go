package pipeline

import (
	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/search"
	"github.com/katalvlaran/pigmentfit/simplex"
	"github.com/katalvlaran/pigmentfit/spectrum"
)

// Report is the outcome of one run.
type Report struct {
	Samples   dataset.Irradiance
	Reference *spectrum.Reference
	Grid      *simplex.Grid
	Result    *search.Result
	Optima    []Optimum // one per search.Metrics entry
}

// Optimum is a metric maximum with every tying composition and its LHE.
type Optimum struct {
	search.Optimum
	Compositions []simplex.Composition
	LHE          [][]float64 // clipped at 0 for display, one per composition
}

// Optimum returns the entry for metric m, or false if absent.
func (r *Report) Optimum(m search.Metric) (Optimum, bool) {
	for _, o := range r.Optima {
		if o.Metric == m {
			return o, true
		}
	}

	return Optimum{}, false
}
