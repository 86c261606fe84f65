// Package render provides visualization rendering for relation graphs and
// interval timelines.
//
// # Overview
//
// This package contains the rendering plumbing that transforms the pure
// graph and level-packing outputs into visual artifacts. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link relation graph diagrams (in [nodelink] subpackage)
//   - Stacked interval timelines (in [timelinesvg] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by both
// renderers.
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the relation graph with Graphviz using
// a circular layout: one colored circle per interval, labeled edges carrying
// the pairwise relation weights.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Precision: 4})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Interval Timelines
//
// The [timelinesvg] subpackage draws each interval as a three-point
// polyline (lower, expected, upper) on its assigned level's row.
//
// [nodelink]: github.com/ainkit/ainviz/pkg/render/nodelink
// [timelinesvg]: github.com/ainkit/ainviz/pkg/render/timelinesvg
package render
