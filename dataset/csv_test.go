package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/simplex"
)

const fractionsCSV = `Label,A,B,K,M,C,P
pure-a,1,0,0,0,0,0
pure-b,0,1,0,0,0,0
blend,0.5,0.5,0,0,0,0
`

const absorbanceCSV = `pure-a,pure-b,blend
0.10,0.30,0.20
-0.05,0.40,0.15
`

func TestReadIrradiance(t *testing.T) {
	s, err := dataset.ReadIrradiance(strings.NewReader("nm,W\n300, 0.1\n301,0.2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{300, 301}, s.Wavelength)
	assert.Equal(t, []float64{0.1, 0.2}, s.Value)

	// No header.
	s, err = dataset.ReadIrradiance(strings.NewReader("300,0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestReadIrradiance_Errors(t *testing.T) {
	_, err := dataset.ReadIrradiance(strings.NewReader("nm,W\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.ReadIrradiance(strings.NewReader("300,0.1,9\n"))
	assert.ErrorIs(t, err, dataset.ErrShape)

	_, err = dataset.ReadIrradiance(strings.NewReader("300,0.1\n301,x\n"))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadIrradiance(strings.NewReader("300,0.1\n301,NaN\n"))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadIrradiance(strings.NewReader("300,\"0.1\n"))
	assert.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestRead(t *testing.T) {
	e, err := dataset.Read(strings.NewReader(fractionsCSV), strings.NewReader(absorbanceCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, e.Mixtures())
	assert.Equal(t, 2, e.Wavelengths())
	assert.Equal(t, simplex.Composition{0.5, 0.5, 0, 0, 0, 0}, e.Composition(2))
	// Negative absorbance is clamped.
	assert.Equal(t, []float64{0, 0.40, 0.15}, e.Row(1))
	assert.NoError(t, e.CheckWavelengths(2))
	assert.ErrorIs(t, e.CheckWavelengths(461), dataset.ErrShape)
}

func TestRead_ShapeMismatch(t *testing.T) {
	_, err := dataset.Read(strings.NewReader(fractionsCSV), strings.NewReader("h\n0.1,0.2\n"))
	assert.ErrorIs(t, err, dataset.ErrShape)

	_, err = dataset.ReadFractions(strings.NewReader("h\nx,1,0,0\n"))
	assert.ErrorIs(t, err, dataset.ErrShape)

	_, err = dataset.ReadFractions(strings.NewReader("h\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.ReadAbsorbance(strings.NewReader("h\n0.1,,0.3\n"))
	assert.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "fractions.csv")
	ap := filepath.Join(dir, "absorbance.csv")
	ip := filepath.Join(dir, "irradiance.csv")
	require.NoError(t, os.WriteFile(fp, []byte(fractionsCSV), 0o600))
	require.NoError(t, os.WriteFile(ap, []byte(absorbanceCSV), 0o600))
	require.NoError(t, os.WriteFile(ip, []byte("400,1.2\n500,1.5\n"), 0o600))

	e, err := dataset.Load(fp, ap)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Mixtures())

	s, err := dataset.LoadIrradiance(ip)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = dataset.Load(filepath.Join(dir, "missing.csv"), ap)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
