package cli

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/pigmentfit/pipeline"
	"github.com/katalvlaran/pigmentfit/render"
)

// runPipeline runs the search on in with the shared sinks: text summary on
// stdout, plots when configured, progress bar on stderr unless --quiet.
func runPipeline(cmd *cobra.Command, in pipeline.Inputs) error {
	opts := []pipeline.Option{
		pipeline.WithLogger(logger(cmd)),
		pipeline.WithSink(pipeline.NewTextSink(cmd.OutOrStdout(), language.English)),
	}
	if cfg.PlotDir != "" {
		opts = append(opts, pipeline.WithSink(render.NewPlotter(cfg.PlotDir)))
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		opts = append(opts, pipeline.WithProgress(func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("Evaluating combinations"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(done)
		}))
	}

	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return err
	}
	_, err = p.Run(cmd.Context(), in)
	if bar != nil {
		_ = bar.Finish()
	}

	return err
}
