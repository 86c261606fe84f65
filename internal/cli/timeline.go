package cli

import (
	"github.com/spf13/cobra"

	"github.com/ainkit/ainviz/pkg/pipeline"
)

// timelineCommand creates the timeline command for level packing.
func (c *CLI) timelineCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		width      float64
		strict     bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "timeline [collection.json]",
		Short: "Pack intervals into display levels and render the timeline",
		Long: `Pack intervals into display levels and render the timeline.

Intervals are assigned to horizontal rows with a first-fit greedy pass over
the input order: two intervals share a row only when their mutual
preference-degree product is zero and their bounds do not touch. With
--strict, every pair within a row is checked instead of just the row's first
interval, which guarantees overlap-free rows for non-transitive degree data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				VizType: pipeline.VizTypeTimeline,
				Formats: parseFormats(formatsStr),
				Width:   width,
				Strict:  strict,
				Refresh: refresh,
			}
			c.applyConfig(&opts)
			return c.runPipeline(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&width, "width", 0, "frame width in pixels (default 800)")
	cmd.Flags().BoolVar(&strict, "strict", false, "check every pair within a level, not just the seed")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}
