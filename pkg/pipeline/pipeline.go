// Package pipeline provides the core visualization pipeline.
//
// This package implements the complete build → pack → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Construct the relation graph from an interval collection
//  2. Pack: Partition intervals into non-overlapping display levels
//  3. Render: Generate output in various formats (SVG, PNG, PDF, DOT, JSON)
//
// The pack stage only runs for the timeline visualization.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    VizType: pipeline.VizTypeGraph,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, collection, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/ainkit/ainviz/pkg/errors"
	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/relation"
)

// Default values shared by CLI and API.
const (
	// DefaultPrecision is the number of decimal places for edge weight labels.
	DefaultPrecision = 4

	// MaxPrecision bounds the precision accepted from callers.
	MaxPrecision = 10

	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0
)

// Visualization types.
const (
	VizTypeGraph    = graphio.VizTypeGraph
	VizTypeTimeline = graphio.VizTypeTimeline
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeGraph

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeGraph:    true,
	VizTypeTimeline: true,
}

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// VizType selects the visualization: "graph" or "timeline".
	VizType string `json:"viz_type,omitempty"`

	// Formats lists the output formats to render.
	Formats []string `json:"formats,omitempty"`

	// Precision is the number of decimal places for edge weight labels,
	// between 1 and MaxPrecision. Zero means unset and selects the default.
	Precision int `json:"precision,omitempty"`

	// Width is the frame width in pixels for the timeline view.
	Width float64 `json:"width,omitempty"`

	// Strict packs levels so every pair within a level is compatible,
	// not just each member against the level's first interval.
	Strict bool `json:"strict,omitempty"`

	// Refresh bypasses the cache and recomputes all artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the relation graph built from the collection.
	Graph *relation.Graph

	// GraphDoc is the serializable form of Graph.
	GraphDoc *graphio.GraphDoc

	// GraphHash is the content hash of GraphDoc.
	GraphHash string

	// Levels holds the packed display levels (timeline runs only).
	Levels [][]int

	// TimelineDoc is the serializable form of Levels (timeline runs only).
	TimelineDoc *graphio.TimelineDoc

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LevelCount int
	BuildTime  time.Duration
	PackTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return apperrors.New(apperrors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: graph, timeline)", vizType)
	}
	return nil
}

// ValidatePrecision checks that a precision is in range. Zero is not a
// valid precision: Options treats 0 as "unset" and substitutes the default,
// so weight labels always carry at least one decimal place.
func ValidatePrecision(precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return apperrors.New(apperrors.ErrCodeInvalidPrecision,
			"invalid precision: %d (must be between 1 and %d)", precision, MaxPrecision)
	}
	return nil
}

// SetDefaults applies default values for unset fields.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidatePrecision(o.Precision); err != nil {
		return err
	}
	if o.VizType == VizTypeTimeline {
		for _, f := range o.Formats {
			if f == FormatDOT {
				return apperrors.New(apperrors.ErrCodeInvalidFormat,
					"dot output requires the graph visualization")
			}
		}
	}
	o.validated = true
	return nil
}

// IsTimeline returns true if this is a timeline visualization.
func (o *Options) IsTimeline() bool {
	return o.VizType == VizTypeTimeline
}
