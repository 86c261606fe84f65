package graphio

import (
	"github.com/ainkit/ainviz/pkg/ain"
	"github.com/ainkit/ainviz/pkg/errors"
	"github.com/ainkit/ainviz/pkg/relation"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeGraph    = "graph"
	VizTypeTimeline = "timeline"
)

// =============================================================================
// Collection - Input Wire Format
// =============================================================================

// Collection is the canonical input format: an ordered list of intervals
// plus the externally computed directional preference-degree matrix.
// Degrees[i][j] is the degree to which item i exceeds item j; the matrix may
// be omitted when only the interval bounds matter (every pair then compares
// with degree 0 and the relation graph has no edges).
type Collection struct {
	Items   []Item      `json:"items" bson:"items"`
	Degrees [][]float64 `json:"degrees,omitempty" bson:"degrees,omitempty"`
}

// Item is one interval in a collection. Expected defaults to the interval
// midpoint when omitted.
type Item struct {
	Lower    float64  `json:"lower" bson:"lower"`
	Upper    float64  `json:"upper" bson:"upper"`
	Expected *float64 `json:"expected,omitempty" bson:"expected,omitempty"`
}

// AINs converts the collection items to validated AIN values in input order.
func (c Collection) AINs() ([]ain.AIN, error) {
	ains := make([]ain.AIN, len(c.Items))
	for i, it := range c.Items {
		var (
			a   ain.AIN
			err error
		)
		if it.Expected != nil {
			a, err = ain.NewWithExpected(it.Lower, it.Upper, *it.Expected)
		} else {
			a, err = ain.New(it.Lower, it.Upper)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "item %d", i)
		}
		ains[i] = a
	}
	return ains, nil
}

// Comparator builds the preference-degree capability for the collection.
// With no degree matrix present, a zero comparator is returned: every pair
// has degree 0, producing an edgeless graph and unrestricted level packing.
func (c Collection) Comparator(ains []ain.AIN) (ain.Comparator, error) {
	if c.Degrees == nil {
		return ain.ComparatorFunc(func(a, b ain.AIN) float64 { return 0 }), nil
	}
	return ain.NewMatrixComparator(ains, c.Degrees)
}

// =============================================================================
// GraphDoc - Relation Graph Wire Format
// =============================================================================

// GraphDoc is the serialization format for relation graphs.
// Used for files, API responses, and the document store. The format is
// human-readable and round-trip stable: nodes and edges appear in index
// order.
type GraphDoc struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is one relation-graph node with its display attributes.
type Node struct {
	Index int    `json:"index" bson:"index"`
	Label string `json:"label" bson:"label"`
	Color string `json:"color" bson:"color"`
}

// Edge is an undirected weighted edge between two node indices (From < To).
type Edge struct {
	From   int     `json:"from" bson:"from"`
	To     int     `json:"to" bson:"to"`
	Weight float64 `json:"weight" bson:"weight"`
}

// TimelineDoc is the serialization format for level assignments.
type TimelineDoc struct {
	Levels [][]int `json:"levels" bson:"levels"`
}

// =============================================================================
// Graph ↔ GraphDoc Conversion
// =============================================================================

// FromGraph converts a relation graph to its serialization format.
// Nodes carry their letter label and palette color for rendering backends.
func FromGraph(g *relation.Graph) GraphDoc {
	doc := GraphDoc{
		Nodes: make([]Node, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for i := 0; i < g.NodeCount(); i++ {
		doc.Nodes[i] = Node{
			Index: i,
			Label: relation.Label(i),
			Color: PaletteColor(i),
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.I, To: e.J, Weight: e.Weight})
	}
	return doc
}

// Palette is the cyclic node color palette, indexed by node index modulo
// its size. The ten colors match the default property cycle used by common
// plotting backends so stored documents render consistently.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// PaletteColor returns the palette color for a node index.
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}
