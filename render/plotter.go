package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/pigmentfit/pipeline"
)

// ErrDir indicates an empty output directory.
var ErrDir = errors.New("render: empty output directory")

var (
	colorRegression = color.RGBA{R: 220, A: 255}
	colorLHE        = color.RGBA{R: 255, G: 165, A: 255}
	colorIrradiance = color.RGBA{B: 200, A: 255}
	colorMax        = color.RGBA{R: 220, A: 255}
)

// Plotter is a pipeline.Sink that saves PNG files into Dir.
type Plotter struct {
	Dir           string
	Width, Height vg.Length
}

var _ pipeline.Sink = (*Plotter)(nil)

// NewPlotter returns a Plotter with 6×4 inch figures.
func NewPlotter(dir string) *Plotter {
	return &Plotter{Dir: dir, Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// FileName maps a plot title to its PNG file name.
func FileName(title string) string { return strcase.ToSnake(title) + ".png" }

// Emit draws every plot of r. It returns the first drawing or I/O error.
func (p *Plotter) Emit(r *pipeline.Report) error {
	if p.Dir == "" {
		return ErrDir
	}
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	if err := p.save(regressionPlot(r), "Irradiance Regression"); err != nil {
		return err
	}
	for _, o := range r.Optima {
		pl, err := metricPlot(r, o)
		if err != nil {
			return err
		}
		if err = p.save(pl, o.Metric.String()+" vs index"); err != nil {
			return err
		}
		for k := range o.Compositions {
			name := o.Metric.String() + " fitment"
			if len(o.Compositions) > 1 {
				name = fmt.Sprintf("%s %d", name, k)
			}
			pl, err = fitmentPlot(r, o, k)
			if err != nil {
				return err
			}
			if err = p.save(pl, name); err != nil {
				return err
			}
		}
	}

	return nil
}

// Files lists the names Emit writes for r, in write order.
func (p *Plotter) Files(r *pipeline.Report) []string {
	out := []string{FileName("Irradiance Regression")}
	for _, o := range r.Optima {
		out = append(out, FileName(o.Metric.String()+" vs index"))
		for k := range o.Compositions {
			name := o.Metric.String() + " fitment"
			if len(o.Compositions) > 1 {
				name = fmt.Sprintf("%s %d", name, k)
			}
			out = append(out, FileName(name))
		}
	}

	return out
}

func (p *Plotter) save(pl *plot.Plot, title string) error {
	path := filepath.Join(p.Dir, FileName(title))
	if err := pl.Save(p.Width, p.Height, path); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	return nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}

	return pts
}

// regressionPlot shows the raw samples and the fitted regression on the grid.
func regressionPlot(r *pipeline.Report) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = "Solar irradiance spectrum"
	pl.X.Label.Text = "Wavelength (nm)"
	pl.Y.Label.Text = "Spectral irradiance (W/m²/nm)"
	pl.Add(plotter.NewGrid())

	if sc, err := plotter.NewScatter(xys(r.Samples.Wavelength, r.Samples.Value)); err == nil {
		sc.GlyphStyle.Radius = vg.Points(1.5)
		pl.Add(sc)
		pl.Legend.Add("Samples", sc)
	}
	if ln, err := plotter.NewLine(xys(r.Reference.Grid().Points(), r.Reference.Raw())); err == nil {
		ln.Color = colorRegression
		ln.Width = vg.Points(2)
		pl.Add(ln)
		pl.Legend.Add("Regression", ln)
	}

	return pl
}

// metricPlot draws a metric over the grid index with every maximum marked.
func metricPlot(r *pipeline.Report, o pipeline.Optimum) (*plot.Plot, error) {
	vals := r.Result.Values(o.Metric)
	idx := make([]float64, len(vals))
	if len(idx) > 1 {
		floats.Span(idx, 0, float64(len(vals)-1))
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s vs composition index\n%v", o.Metric, o.Compositions[0])
	pl.X.Label.Text = "Composition index"
	pl.Y.Label.Text = o.Metric.String()

	ln, err := plotter.NewLine(xys(idx, vals))
	if err != nil {
		return nil, err
	}
	pl.Add(ln)

	marks := make(plotter.XYs, len(o.Indices))
	for k, i := range o.Indices {
		marks[k].X, marks[k].Y = float64(i), vals[i]
	}
	sc, err := plotter.NewScatter(marks)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = colorMax
	sc.GlyphStyle.Radius = vg.Points(3)
	pl.Add(sc)

	return pl, nil
}

// fitmentPlot overlays the k-th optimum LHE with the irradiance regression
// rescaled to peak 1, so both share the unitless axis.
func fitmentPlot(r *pipeline.Report, o pipeline.Optimum, k int) (*plot.Plot, error) {
	x := r.Reference.Grid().Points()
	raw := r.Reference.Raw()
	if peak := floats.Max(raw); peak > 0 {
		floats.Scale(1/peak, raw)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s fitment\n%v", o.Metric, o.Compositions[k])
	pl.X.Label.Text = "Wavelength (nm)"
	pl.Y.Label.Text = "LHE / relative irradiance"
	pl.Add(plotter.NewGrid())

	lhe, err := plotter.NewLine(xys(x, o.LHE[k]))
	if err != nil {
		return nil, err
	}
	lhe.Color = colorLHE
	lhe.Width = vg.Points(2)
	irr, err := plotter.NewLine(xys(x, raw))
	if err != nil {
		return nil, err
	}
	irr.Color = colorIrradiance
	pl.Add(lhe, irr)
	pl.Legend.Add("LHE spectrum", lhe)
	pl.Legend.Add("Solar irradiance (relative)", irr)
	pl.Legend.Top = true

	return pl, nil
}
