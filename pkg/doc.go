// Package pkg provides the core libraries for ainviz interval visualization.
//
// # Overview
//
// ainviz turns collections of asymmetric interval numbers (AINs) into two
// visualizations: a weighted relation graph connecting mutually ambiguous
// intervals, and a timeline that packs non-conflicting intervals onto shared
// display levels. The pkg directory is organized into four main areas:
//
//  1. [ain] / [relation] / [timeline] - Domain logic (intervals, comparison
//     degrees, graph construction, level packing)
//  2. [render] - Visualization output (Graphviz node-link diagrams, timeline
//     SVG, format conversion)
//  3. [graphio] - Wire formats (collection input, graph and timeline documents)
//  4. [pipeline] / [cache] / [store] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow through ainviz:
//
//	Collection (items + degree matrix)
//	         ↓
//	    [relation] package (build weighted relation graph)
//	         ↓
//	    [timeline] package (pack intervals into levels)
//	         ↓
//	    [render] package (node-link or timeline output)
//	         ↓
//	    SVG/PDF/PNG/DOT/JSON output
//
// # Quick Start
//
// Build a relation graph and render it:
//
//	import (
//	    "github.com/ainkit/ainviz/pkg/ain"
//	    "github.com/ainkit/ainviz/pkg/relation"
//	    "github.com/ainkit/ainviz/pkg/render/nodelink"
//	)
//
//	// 1. Define intervals
//	ains := []ain.AIN{
//	    {Lower: 0, Upper: 2, Expected: 1},
//	    {Lower: 1, Upper: 5, Expected: 3},
//	}
//
//	// 2. Supply preference degrees
//	cmp, _ := ain.NewMatrixComparator(ains, [][]float64{{0, 0.5}, {0.5, 0}})
//
//	// 3. Build the relation graph
//	g, _ := relation.Build(ains, cmp)
//
//	// 4. Render to SVG
//	dot := nodelink.ToDOT(g, nodelink.Options{Precision: 4})
//	svg, _ := nodelink.RenderSVG(dot)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [ain] - Asymmetric interval numbers and the Comparator abstraction.
// Preference degrees come from an external source (typically a matrix shipped
// alongside the intervals); the package validates and serves them.
//
// [relation] - Undirected weighted relation graph. An edge connects two
// intervals when both directed preference degrees are positive; the weight is
// their product. Deterministic node ordering with spreadsheet-style labels.
//
// [timeline] - Greedy first-fit packing of intervals onto display levels.
// Two policies: seed-compatibility (default) and strict all-member
// compatibility.
//
// ## Visualization
//
// [render/nodelink] - Relation graph diagrams using Graphviz.
//
// [render/timelinesvg] - Hand-built timeline SVG with the tab10 palette.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Serialization
//
// [graphio] - Wire formats: the Collection input document and the GraphDoc
// and TimelineDoc output documents (JSON and BSON tags).
//
// ## Infrastructure
//
// [pipeline] - Complete visualization pipeline (build → pack → render) used
// by CLI and API. Ensures consistent behavior across all entry points.
//
// [cache] - Artifact caching behind a single Cache interface. FileCache for
// the CLI, RedisCache for the server, NullCache for tests and --no-cache.
//
// [store] - Document persistence for the HTTP API. MongoStore for
// deployments, MemStore for development and testing.
//
// [observability] - Optional hooks for pipeline and cache instrumentation.
//
// [errors] - Structured error codes shared by CLI exit handling and API
// status mapping.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/relation/...     # Specific package
//
// [ain]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/ain
// [relation]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/relation
// [timeline]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/timeline
// [render]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/render/nodelink
// [render/timelinesvg]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/render/timelinesvg
// [graphio]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/graphio
// [pipeline]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/cache
// [store]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/store
// [observability]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/ainkit/ainviz/pkg/buildinfo
package pkg
