package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/pigmentfit/rbf"
	"github.com/katalvlaran/pigmentfit/simplex"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvIrradiance = "PIGMENTFIT_IRRADIANCE"
	EnvFractions  = "PIGMENTFIT_FRACTIONS"
	EnvAbsorbance = "PIGMENTFIT_ABSORBANCE"
	EnvMinNM      = "PIGMENTFIT_WL_MIN"
	EnvMaxNM      = "PIGMENTFIT_WL_MAX"
	EnvStepNM     = "PIGMENTFIT_WL_STEP"
	EnvDegree     = "PIGMENTFIT_DEGREE"
	EnvResolution = "PIGMENTFIT_RESOLUTION"
	EnvFilter     = "PIGMENTFIT_FILTER"
	EnvKernel     = "PIGMENTFIT_KERNEL"
	EnvEpsilon    = "PIGMENTFIT_EPSILON"
	EnvSmoothing  = "PIGMENTFIT_SMOOTHING"
	EnvWorkers    = "PIGMENTFIT_WORKERS"
	EnvPlotDir    = "PIGMENTFIT_PLOT_DIR"
)

// Config is one search run.
type Config struct {
	// Input CSV files; required by the run command only.
	IrradiancePath string
	FractionsPath  string
	AbsorbancePath string

	// Wavelength grid in nm.
	MinNM, MaxNM, StepNM float64

	// Degree of the irradiance regression.
	Degree int

	// Resolution is N, the number of points per composition axis.
	Resolution int
	Filter     string // "lattice" or "exact"

	// RBF model.
	Kernel    string
	Epsilon   float64 // 0 derives ε from the nodes
	Smoothing float64

	Workers int

	// PlotDir receives PNG plots when non-empty.
	PlotDir string
}

// Default returns the documented defaults: 340–800 nm by 1 nm, a degree-6
// regression, N = 11, lattice filter, inverse-multiquadric RBF, one worker.
func Default() Config {
	return Config{
		MinNM:      340,
		MaxNM:      800,
		StepNM:     1,
		Degree:     6,
		Resolution: 11,
		Filter:     simplex.Lattice.String(),
		Kernel:     rbf.InverseMultiquadric.String(),
		Workers:    1,
	}
}

// Load returns Default() overridden by the environment. envFiles are read
// with godotenv; missing files are skipped and process variables take
// precedence over file values.
func Load(envFiles ...string) (Config, error) {
	fileVars := map[string]string{}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	return FromLookup(Default(), lookup)
}

// FromLookup overrides base with every variable lookup reports as set.
func FromLookup(base Config, lookup func(string) (string, bool)) (Config, error) {
	c := base
	strs := []struct {
		key string
		dst *string
	}{
		{EnvIrradiance, &c.IrradiancePath},
		{EnvFractions, &c.FractionsPath},
		{EnvAbsorbance, &c.AbsorbancePath},
		{EnvFilter, &c.Filter},
		{EnvKernel, &c.Kernel},
		{EnvPlotDir, &c.PlotDir},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok {
			*s.dst = v
		}
	}

	floatVars := []struct {
		key string
		dst *float64
	}{
		{EnvMinNM, &c.MinNM},
		{EnvMaxNM, &c.MaxNM},
		{EnvStepNM, &c.StepNM},
		{EnvEpsilon, &c.Epsilon},
		{EnvSmoothing, &c.Smoothing},
	}
	for _, f := range floatVars {
		if v, ok := lookup(f.key); ok {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Config{}, fmt.Errorf("%s=%q: %w", f.key, v, ErrInvalid)
			}
			*f.dst = x
		}
	}

	intVars := []struct {
		key string
		dst *int
	}{
		{EnvDegree, &c.Degree},
		{EnvResolution, &c.Resolution},
		{EnvWorkers, &c.Workers},
	}
	for _, n := range intVars {
		if v, ok := lookup(n.key); ok {
			x, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s=%q: %w", n.key, v, ErrInvalid)
			}
			*n.dst = x
		}
	}

	return c, nil
}

// Validate checks every field except the input paths.
func (c Config) Validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	switch {
	case !finite(c.MinNM) || !finite(c.MaxNM) || c.MaxNM <= c.MinNM:
		return fmt.Errorf("wavelength range [%g, %g]: %w", c.MinNM, c.MaxNM, ErrInvalid)
	case !finite(c.StepNM) || c.StepNM <= 0:
		return fmt.Errorf("wavelength step %g: %w", c.StepNM, ErrInvalid)
	case c.Degree < 1:
		return fmt.Errorf("degree %d: %w", c.Degree, ErrInvalid)
	case c.Resolution < 2:
		return fmt.Errorf("resolution %d: %w", c.Resolution, ErrInvalid)
	case !finite(c.Epsilon) || c.Epsilon < 0:
		return fmt.Errorf("epsilon %g: %w", c.Epsilon, ErrInvalid)
	case !finite(c.Smoothing) || c.Smoothing < 0:
		return fmt.Errorf("smoothing %g: %w", c.Smoothing, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if _, err := simplex.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("filter: %w: %w", ErrInvalid, err)
	}
	if _, err := rbf.ParseKernel(c.Kernel); err != nil {
		return fmt.Errorf("kernel: %w: %w", ErrInvalid, err)
	}

	return nil
}

// RequireInputs reports ErrInvalid when any input path is empty.
func (c Config) RequireInputs() error {
	for _, p := range []struct{ name, v string }{
		{"irradiance", c.IrradiancePath},
		{"fractions", c.FractionsPath},
		{"absorbance", c.AbsorbancePath},
	} {
		if p.v == "" {
			return fmt.Errorf("%s path is empty: %w", p.name, ErrInvalid)
		}
	}

	return nil
}

// FilterValue returns the parsed composition filter.
func (c Config) FilterValue() (simplex.Filter, error) { return simplex.ParseFilter(c.Filter) }

// RBFOptions translates the model fields into rbf options.
func (c Config) RBFOptions() ([]rbf.Option, error) {
	k, err := rbf.ParseKernel(c.Kernel)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w: %w", ErrInvalid, err)
	}
	opts := []rbf.Option{rbf.WithKernel(k)}
	if c.Epsilon > 0 {
		opts = append(opts, rbf.WithEpsilon(c.Epsilon))
	}
	if c.Smoothing > 0 {
		opts = append(opts, rbf.WithSmoothing(c.Smoothing))
	}

	return opts, nil
}
