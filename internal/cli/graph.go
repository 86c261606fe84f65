package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/pipeline"
)

// graphCommand creates the graph command for building relation graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		precision  int
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "graph [collection.json]",
		Short: "Build the relation graph from an interval collection",
		Long: `Build the relation graph from an interval collection.

The graph command reads a collection file (interval bounds plus the
precomputed preference-degree matrix), connects every pair whose mutual
degree product is positive, and writes the result in the requested formats.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				VizType:   pipeline.VizTypeGraph,
				Formats:   parseFormats(formatsStr),
				Precision: precision,
				Refresh:   refresh,
			}
			c.applyConfig(&opts)
			return c.runPipeline(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, pdf, png (comma-separated)")
	cmd.Flags().IntVar(&precision, "precision", 0, "decimal places for edge weight labels (default 4)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// applyConfig layers config-file defaults under flag values.
func (c *CLI) applyConfig(opts *pipeline.Options) {
	if opts.Precision == 0 && c.Config.Precision != 0 {
		opts.Precision = c.Config.Precision
	}
	if !opts.Strict && c.Config.Strict {
		opts.Strict = true
	}
}

// runPipeline loads the collection, executes the pipeline, and writes the
// artifacts. It is shared by the graph and timeline commands.
func (c *CLI) runPipeline(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	col, err := graphio.ReadCollectionFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", opts.VizType))
	spin.Start()

	result, err := runner.Execute(ctx, col, opts)
	if err != nil {
		spin.StopWithError("Build failed")
		return err
	}
	spin.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		vizType:   opts.VizType,
		input:     input,
		output:    output,
	}); err != nil {
		return err
	}

	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.LevelCount, result.CacheInfo.RenderHit)
	if opts.VizType == pipeline.VizTypeGraph {
		printNextStep("View the timeline", fmt.Sprintf("ainviz timeline %s", input))
	}
	return nil
}
