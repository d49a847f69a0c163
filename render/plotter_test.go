package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/config"
	"github.com/katalvlaran/pigmentfit/pipeline"
	"github.com/katalvlaran/pigmentfit/render"
	"github.com/katalvlaran/pigmentfit/spectrum"
	"github.com/katalvlaran/pigmentfit/synth"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "irradiance_regression.png", render.FileName("Irradiance Regression"))
	assert.Equal(t, "correlation_vs_index.png", render.FileName("correlation vs index"))
	assert.Equal(t, "integral_fitment_1.png", render.FileName("integral fitment 1"))
}

func TestPlotter_Emit(t *testing.T) {
	c := config.Default()
	c.MinNM, c.MaxNM, c.StepNM = 400, 700, 10
	c.Resolution = 2

	irr, err := synth.Irradiance(300, 1000, 71)
	require.NoError(t, err)
	g, err := spectrum.NewGrid(c.MinNM, c.MaxNM, c.StepNM)
	require.NoError(t, err)
	dyes, err := synth.NewDyes(g, synth.DefaultBands())
	require.NoError(t, err)
	emp, err := dyes.Empirical(synth.DesignCompositions())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "plots")
	pl := render.NewPlotter(dir)
	p, err := pipeline.New(c, pipeline.WithSink(pl))
	require.NoError(t, err)
	r, err := p.Run(context.Background(), pipeline.Inputs{Irradiance: irr, Empirical: emp})
	require.NoError(t, err)

	files := pl.Files(r)
	assert.GreaterOrEqual(t, len(files), 7)
	assert.Equal(t, "irradiance_regression.png", files[0])
	for _, f := range files {
		st, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, f)
		assert.Greater(t, st.Size(), int64(0), f)
	}
}

func TestPlotter_EmptyDir(t *testing.T) {
	assert.ErrorIs(t, (&render.Plotter{}).Emit(&pipeline.Report{}), render.ErrDir)
}
