package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/pipeline"
)

// renderCommand creates the render command for generating both views at once.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		vizTypesStr string
		formatsStr  string
		output      string
		precision   int
		width       float64
		strict      bool
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "render [collection.json]",
		Short: "Render a collection as node-link graph and/or timeline",
		Long: `Render a collection as node-link graph and/or timeline.

The render command runs the full pipeline for each requested visualization
type. With multiple types or formats, output file names are derived from the
input name (e.g., ains_graph.svg, ains_timeline.svg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vizTypes := parseVizTypes(vizTypesStr)
			for _, vt := range vizTypes {
				if err := pipeline.ValidateVizType(vt); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], renderParams{
				vizTypes:  vizTypes,
				formats:   parseFormats(formatsStr),
				output:    output,
				precision: precision,
				width:     width,
				strict:    strict,
				noCache:   noCache,
				refresh:   refresh,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): graph (default), timeline (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, pdf, png (comma-separated)")
	cmd.Flags().IntVar(&precision, "precision", 0, "decimal places for edge weight labels (default 4)")
	cmd.Flags().Float64Var(&width, "width", 0, "timeline frame width in pixels (default 800)")
	cmd.Flags().BoolVar(&strict, "strict", false, "check every pair within a level, not just the seed")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// parseVizTypes parses the --type flag into a slice of visualization types.
// If empty, defaults to ["graph"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{pipeline.VizTypeGraph}
	}
	return strings.Split(s, ",")
}

type renderParams struct {
	vizTypes  []string
	formats   []string
	output    string
	precision int
	width     float64
	strict    bool
	noCache   bool
	refresh   bool
}

// runRender executes the pipeline once per visualization type.
func (c *CLI) runRender(ctx context.Context, input string, p renderParams) error {
	logger := loggerFromContext(ctx)

	col, err := graphio.ReadCollectionFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded collection: %d items", len(col.Items))

	runner, err := c.newRunner(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	multiViz := len(p.vizTypes) > 1
	for _, vizType := range p.vizTypes {
		formats := p.formats
		if vizType == pipeline.VizTypeTimeline {
			filtered := dropDOT(formats)
			if len(filtered) != len(formats) {
				printWarning("dot output only applies to the graph view, skipping it for the timeline")
			}
			if len(filtered) == 0 {
				continue
			}
			formats = filtered
		}

		opts := pipeline.Options{
			VizType:   vizType,
			Formats:   formats,
			Precision: p.precision,
			Width:     p.width,
			Strict:    p.strict,
			Refresh:   p.refresh,
			Logger:    c.Logger,
		}
		c.applyConfig(&opts)

		prog := newProgress(c.Logger)
		result, err := runner.Execute(ctx, col, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", vizType, err)
		}
		prog.done(fmt.Sprintf("Rendered %s", vizType))

		if err := writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   formats,
			vizType:   vizType,
			multiViz:  multiViz,
			input:     input,
			output:    p.output,
		}); err != nil {
			return err
		}
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.LevelCount, result.CacheInfo.RenderHit)
	}
	return nil
}

// dropDOT filters the dot format, which only applies to the graph view.
func dropDOT(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if f != pipeline.FormatDOT {
			out = append(out, f)
		}
	}
	return out
}
