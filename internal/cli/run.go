package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pigmentfit/dataset"
	"github.com/katalvlaran/pigmentfit/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search with measured irradiance and absorbance data",
	Long: `run reads three CSV files: irradiance samples (wavelength, value),
the mixture volume fractions (header row, label column, six fractions) and
the absorbance table (header row, one row per grid wavelength, one column
per mixture). Paths come from flags or PIGMENTFIT_* variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RequireInputs(); err != nil {
			return err
		}
		irr, err := dataset.LoadIrradiance(cfg.IrradiancePath)
		if err != nil {
			return err
		}
		emp, err := dataset.Load(cfg.FractionsPath, cfg.AbsorbancePath)
		if err != nil {
			return err
		}

		return runPipeline(cmd, pipeline.Inputs{Irradiance: irr, Empirical: emp})
	},
}

func init() {
	runCmd.Flags().String("irradiance", "", "irradiance CSV")
	runCmd.Flags().String("fractions", "", "mixture volume-fraction CSV")
	runCmd.Flags().String("absorbance", "", "mixture absorbance CSV")
	rootCmd.AddCommand(runCmd)
}
