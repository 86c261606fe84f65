package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ainkit/ainviz/pkg/cache"
	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/observability"
	"github.com/ainkit/ainviz/pkg/relation"
	"github.com/ainkit/ainviz/pkg/render"
	"github.com/ainkit/ainviz/pkg/render/nodelink"
	"github.com/ainkit/ainviz/pkg/render/timelinesvg"
	"github.com/ainkit/ainviz/pkg/timeline"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete build → pack → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, col graphio.Collection, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(col.Items))
	g, err := r.Build(col)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, len(col.Items), 0, time.Since(buildStart), err)
		return nil, err
	}
	doc := graphio.FromGraph(g)
	result.Graph = g
	result.GraphDoc = &doc
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	observability.Pipeline().OnBuildComplete(ctx, g.NodeCount(), g.EdgeCount(), result.Stats.BuildTime, nil)

	// Content hash for cache keys and API responses
	if data, err := graphio.MarshalGraphDoc(doc); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("built relation graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Pack (timeline only)
	if opts.IsTimeline() {
		packStart := time.Now()
		levels, err := r.PackLevels(col, opts)
		if err != nil {
			return nil, err
		}
		result.Levels = levels
		result.TimelineDoc = &graphio.TimelineDoc{Levels: levels}
		result.Stats.PackTime = time.Since(packStart)
		result.Stats.LevelCount = len(levels)
		observability.Pipeline().OnPackComplete(ctx, len(levels), opts.Strict, result.Stats.PackTime)

		r.Logger.Info("packed timeline levels",
			"levels", len(levels),
			"strict", opts.Strict,
			"duration", result.Stats.PackTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.VizType, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, col, result, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build constructs the relation graph for a collection.
func (r *Runner) Build(col graphio.Collection) (*relation.Graph, error) {
	ains, err := col.AINs()
	if err != nil {
		return nil, err
	}
	cmp, err := col.Comparator(ains)
	if err != nil {
		return nil, err
	}
	return relation.Build(ains, cmp)
}

// PackLevels partitions the collection's intervals into display levels.
func (r *Runner) PackLevels(col graphio.Collection, opts Options) ([][]int, error) {
	ains, err := col.AINs()
	if err != nil {
		return nil, err
	}
	cmp, err := col.Comparator(ains)
	if err != nil {
		return nil, err
	}
	if opts.Strict {
		return timeline.PackStrict(ains, cmp), nil
	}
	return timeline.Pack(ains, cmp), nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// The result must already carry the build and pack outputs.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, col graphio.Collection, result *Result, opts Options) (map[string][]byte, bool, error) {
	// Try to get all formats from cache (unless refresh requested)
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := r.artifactKey(result.GraphHash, format, opts)
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := r.renderAll(col, result, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.artifactKey(result.GraphHash, format, opts)
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

func (r *Runner) artifactKey(graphHash, format string, opts Options) string {
	return cache.Key("artifact", graphHash, opts.VizType, format, opts.Precision, opts.Width, opts.Strict)
}

// renderAll produces every requested format from the build and pack outputs.
func (r *Runner) renderAll(col graphio.Collection, result *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	// SVG is the source for PNG and PDF, so compute it once when any of the
	// three is requested.
	var svg []byte
	needsSVG := false
	for _, f := range opts.Formats {
		if f == FormatSVG || f == FormatPNG || f == FormatPDF {
			needsSVG = true
		}
	}
	if needsSVG {
		var err error
		svg, err = r.renderSVG(col, result, opts)
		if err != nil {
			return nil, err
		}
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = svg
		case FormatPNG:
			png, err := render.ToPNG(svg, 2.0)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = png
		case FormatPDF:
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[format] = pdf
		case FormatDOT:
			artifacts[format] = []byte(nodelink.ToDOT(result.Graph, nodelink.Options{Precision: opts.Precision}))
		case FormatJSON:
			data, err := r.renderJSON(result, opts)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}

func (r *Runner) renderSVG(col graphio.Collection, result *Result, opts Options) ([]byte, error) {
	if opts.IsTimeline() {
		ains, err := col.AINs()
		if err != nil {
			return nil, err
		}
		return timelinesvg.RenderSVG(result.Levels, ains, timelinesvg.Options{Width: opts.Width}), nil
	}
	dot := nodelink.ToDOT(result.Graph, nodelink.Options{Precision: opts.Precision})
	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return svg, nil
}

func (r *Runner) renderJSON(result *Result, opts Options) ([]byte, error) {
	if opts.IsTimeline() {
		return graphio.MarshalTimelineDoc(*result.TimelineDoc)
	}
	return graphio.MarshalGraphDoc(*result.GraphDoc)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
