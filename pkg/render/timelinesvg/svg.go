// Package timelinesvg renders level-packed interval collections as stacked
// horizontal timelines.
//
// Each interval is drawn as a three-point polyline at its lower bound,
// expected value, and upper bound on the row of its assigned level, with
// tick markers at the three points and the interval's letter label to the
// left of the lower bound. Colors follow the same cyclic palette as the
// node-link view so the two renderings cross-reference.
package timelinesvg

import (
	"bytes"
	"fmt"

	"github.com/ainkit/ainviz/pkg/ain"
	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/relation"
)

// Layout constants tuned for readability at the default frame width.
const (
	defaultWidth  = 800.0
	rowHeight     = 48.0
	marginX       = 60.0
	marginY       = 32.0
	tickHalfSpan  = 8.0
	strokeWidth   = 3.0
	labelFontSize = 16.0
)

// Options configures timeline rendering.
type Options struct {
	// Width is the frame width in pixels. Zero selects the default (800).
	Width float64
}

// RenderSVG draws the packed levels as an SVG document.
//
// levels is a partition of indices into ains as produced by the timeline
// packer: levels[0] is the bottom row. The output is deterministic for a
// fixed input.
func RenderSVG(levels [][]int, ains []ain.AIN, opts Options) []byte {
	width := opts.Width
	if width == 0 {
		width = defaultWidth
	}
	height := marginY*2 + rowHeight*float64(max(len(levels), 1))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	if len(levels) > 0 {
		scale := newScale(ains, width)
		for row, level := range levels {
			y := height - marginY - rowHeight*(float64(row)+0.5)
			for _, idx := range level {
				renderInterval(&buf, ains[idx], idx, y, scale)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// scale maps interval values onto the horizontal pixel range.
type scale struct {
	min  float64
	span float64
	w    float64
}

func newScale(ains []ain.AIN, width float64) scale {
	if len(ains) == 0 {
		return scale{min: 0, span: 1, w: width}
	}
	lo, hi := ains[0].Lower, ains[0].Upper
	for _, a := range ains[1:] {
		if a.Lower < lo {
			lo = a.Lower
		}
		if a.Upper > hi {
			hi = a.Upper
		}
	}
	span := hi - lo
	if span == 0 {
		// All values coincide; any non-zero span centers the points.
		span = 1
	}
	return scale{min: lo, span: span, w: width}
}

func (s scale) x(v float64) float64 {
	return marginX + (v-s.min)/s.span*(s.w-2*marginX)
}

func renderInterval(buf *bytes.Buffer, a ain.AIN, idx int, y float64, s scale) {
	color := graphio.PaletteColor(idx)
	xs := []float64{s.x(a.Lower), s.x(a.Expected), s.x(a.Upper)}

	fmt.Fprintf(buf, `  <polyline points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="none" stroke=%q stroke-width="%.1f"/>`+"\n",
		xs[0], y, xs[1], y, xs[2], y, color, strokeWidth)

	for _, x := range xs {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f"/>`+"\n",
			x, y-tickHalfSpan, x, y+tickHalfSpan, color, strokeWidth)
	}

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="middle" font-size="%.0f" font-family="sans-serif">%s</text>`+"\n",
		xs[0]-tickHalfSpan, y, labelFontSize, relation.Label(idx))
}
