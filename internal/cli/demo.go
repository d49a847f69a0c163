package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pigmentfit/pipeline"
	"github.com/katalvlaran/pigmentfit/spectrum"
	"github.com/katalvlaran/pigmentfit/synth"
)

var (
	demoTemperature float64
	demoNoise       float64
	demoSeed        int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Search with synthetic black-body irradiance and Gaussian dyes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !(demoTemperature > 0) || demoNoise < 0 {
			return fmt.Errorf("temperature %g, noise %g: %w", demoTemperature, demoNoise, synth.ErrParam)
		}
		irr, err := synth.Irradiance(300, 1000, 141, synth.WithTemperature(demoTemperature))
		if err != nil {
			return err
		}
		grid, err := spectrum.NewGrid(cfg.MinNM, cfg.MaxNM, cfg.StepNM)
		if err != nil {
			return err
		}
		dyes, err := synth.NewDyes(grid, synth.DefaultBands())
		if err != nil {
			return err
		}
		emp, err := dyes.Empirical(synth.DesignCompositions(), synth.WithNoise(demoNoise), synth.WithSeed(demoSeed))
		if err != nil {
			return err
		}

		return runPipeline(cmd, pipeline.Inputs{Irradiance: irr, Empirical: emp})
	},
}

func init() {
	demoCmd.Flags().Float64Var(&demoTemperature, "temperature", 5778, "black-body temperature (K)")
	demoCmd.Flags().Float64Var(&demoNoise, "noise", 0, "absorbance noise sigma")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "noise seed")
	rootCmd.AddCommand(demoCmd)
}
