package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/simplex"
)

func TestNewEmpirical_Copies(t *testing.T) {
	comps := []simplex.Composition{{1}, {0, 1}}
	abs := [][]float64{{0.1, 0.2}, {0.3, -1}}

	e, err := dataset.NewEmpirical(comps, abs)
	require.NoError(t, err)

	comps[0][0] = 9
	abs[0][0] = 9
	assert.Equal(t, 1.0, e.Composition(0)[0])
	assert.Equal(t, [][]float64{{0.1, 0.2}, {0.3, 0}}, e.Absorbance())
	assert.Equal(t, [][]float64{{1, 0, 0, 0, 0, 0}, {0, 1, 0, 0, 0, 0}}, e.Nodes())

	got := e.Absorbance()
	got[1][1] = 5
	assert.Equal(t, 0.0, e.Row(1)[1])

	cs := e.Compositions()
	cs[1][1] = 7
	assert.Equal(t, 1.0, e.Composition(1)[1])
}

func TestNewEmpirical_Errors(t *testing.T) {
	_, err := dataset.NewEmpirical(nil, [][]float64{{1}})
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.NewEmpirical([]simplex.Composition{{1}}, nil)
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.NewEmpirical([]simplex.Composition{{1}}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, dataset.ErrShape)

	_, err = dataset.NewEmpirical([]simplex.Composition{{1}}, [][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.NewEmpirical([]simplex.Composition{{math.NaN()}}, [][]float64{{1}})
	assert.ErrorIs(t, err, dataset.ErrMalformed)
}
