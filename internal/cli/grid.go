package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/pigmentfit/simplex"
)

var gridList bool

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the composition grid size and step for N",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := cfg.FilterValue()
		if err != nil {
			return err
		}
		g, err := simplex.NewGrid(cfg.Resolution, filter)
		if err != nil {
			return err
		}
		p := message.NewPrinter(language.English)
		if _, err = p.Fprintf(cmd.OutOrStdout(), "N=%d filter=%s step=%.4g compositions=%d\n",
			g.N(), g.Filter(), g.Step(), g.Len()); err != nil {
			return err
		}
		if !gridList {
			return nil
		}

		return g.Each(func(i int, c simplex.Composition) error {
			_, err := p.Fprintf(cmd.OutOrStdout(), "%d\t%v\n", i, c)
			return err
		})
	},
}

func init() {
	gridCmd.Flags().BoolVar(&gridList, "list", false, "print every composition")
	rootCmd.AddCommand(gridCmd)
}
