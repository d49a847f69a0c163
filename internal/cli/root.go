// Package cli is the pigmentfit command line: cobra commands registered on
// rootCmd in init(), configuration from .env/environment then flags.
package cli

import (
	"context"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pigmentfit/config"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

var (
	envFile string
	verbose bool
	quiet   bool
	plotDir string

	// cfg is resolved in PersistentPreRunE and read by every sub-command.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pigmentfit",
	Short: "Find the dye blend whose LHE spectrum best matches sunlight",
	Long: `pigmentfit evaluates every six-dye composition on a simplex grid,
predicts its light-harvesting efficiency from measured mixtures with a
radial basis function model, and reports the blends that maximize
correlation, integral and covariance with the solar irradiance spectrum.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(envFile); err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		return cfg.Validate()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with PIGMENTFIT_* settings")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log stage diagnostics to stderr")
	pf.BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")
	pf.StringVar(&plotDir, "plots", "", "write PNG plots into this directory")

	d := config.Default()
	pf.Float64("wl-min", d.MinNM, "first grid wavelength (nm)")
	pf.Float64("wl-max", d.MaxNM, "last grid wavelength (nm)")
	pf.Float64("wl-step", d.StepNM, "grid spacing (nm)")
	pf.Int("degree", d.Degree, "irradiance regression degree")
	pf.IntP("resolution", "n", d.Resolution, "points per composition axis (N)")
	pf.String("filter", d.Filter, "simplex membership rule: lattice or exact")
	pf.String("kernel", d.Kernel, "RBF kernel: inverse, multiquadric, gaussian, linear, cubic, thin_plate")
	pf.Float64("epsilon", d.Epsilon, "RBF shape parameter (0 derives it from the nodes)")
	pf.Float64("smoothing", d.Smoothing, "RBF smoothing")
	pf.IntP("workers", "w", d.Workers, "evaluation goroutines")
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	f := cmd.Flags()
	if f.Changed("wl-min") {
		c.MinNM, _ = f.GetFloat64("wl-min")
	}
	if f.Changed("wl-max") {
		c.MaxNM, _ = f.GetFloat64("wl-max")
	}
	if f.Changed("wl-step") {
		c.StepNM, _ = f.GetFloat64("wl-step")
	}
	if f.Changed("degree") {
		c.Degree, _ = f.GetInt("degree")
	}
	if f.Changed("resolution") {
		c.Resolution, _ = f.GetInt("resolution")
	}
	if f.Changed("filter") {
		c.Filter, _ = f.GetString("filter")
	}
	if f.Changed("kernel") {
		c.Kernel, _ = f.GetString("kernel")
	}
	if f.Changed("epsilon") {
		c.Epsilon, _ = f.GetFloat64("epsilon")
	}
	if f.Changed("smoothing") {
		c.Smoothing, _ = f.GetFloat64("smoothing")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("plots") {
		c.PlotDir = plotDir
	}
	for _, p := range []struct {
		flag string
		dst  *string
	}{
		{"irradiance", &c.IrradiancePath},
		{"fractions", &c.FractionsPath},
		{"absorbance", &c.AbsorbancePath},
	} {
		if f.Lookup(p.flag) != nil && f.Changed(p.flag) {
			*p.dst, _ = f.GetString(p.flag)
		}
	}
}

// logger returns a stderr logger under --verbose, otherwise a silent one.
func logger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.ErrOrStderr(), "pigmentfit: ", log.LstdFlags)
}

// ShutdownSignals cancel the command context.
var ShutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Execute runs the root command with os.Args; ctx cancels a running search.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
