// Package relation builds undirected weighted relation graphs over ordered
// collections of asymmetric interval numbers.
//
// Nodes are collection indices (one node per interval, isolated nodes
// included). For every unordered pair {i, j} the builder asks the supplied
// comparison capability for the two directional preference degrees and
// stores their product as the edge weight; a zero product means the pair is
// unambiguous and gets no edge. The graph therefore encodes comparability
// ambiguity, not raw interval overlap.
//
// The graph is fully derived from its input collection and is never updated
// incrementally; [Graph.Add] exists only to signal that extension is
// unsupported.
package relation

import (
	"fmt"
	"strings"

	"github.com/ainkit/ainviz/pkg/ain"
	"github.com/ainkit/ainviz/pkg/errors"
)

// Edge is an undirected weighted edge between two collection indices.
// I < J always holds for edges stored in a Graph.
type Edge struct {
	I      int
	J      int
	Weight float64
}

// Graph is an undirected weighted relation graph over a fixed AIN
// collection. The zero value is not usable - use Build.
//
// Graph is safe for concurrent reads; it is never mutated after Build.
type Graph struct {
	ains    []ain.AIN
	edges   []Edge
	weights map[[2]int]float64
}

// Build constructs the relation graph for the given ordered collection.
//
// Every element is validated before any graph state is built; an invalid
// element aborts construction with an INVALID_INPUT error and no partial
// graph is returned. Pair evaluation is O(n²), acceptable for the tens to
// low hundreds of intervals this is used with.
func Build(ains []ain.AIN, cmp ain.Comparator) (*Graph, error) {
	if cmp == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "comparator must not be nil")
	}
	if err := ain.ValidateAll(ains); err != nil {
		return nil, err
	}

	g := &Graph{
		ains:    append([]ain.AIN(nil), ains...),
		weights: make(map[[2]int]float64),
	}
	for i := 0; i < len(ains); i++ {
		for j := i + 1; j < len(ains); j++ {
			gt := cmp.Degree(ains[i], ains[j])
			lt := cmp.Degree(ains[j], ains[i])
			if w := gt * lt; w > 0 {
				g.edges = append(g.edges, Edge{I: i, J: j, Weight: w})
				g.weights[[2]int{i, j}] = w
			}
		}
	}
	return g, nil
}

// Add would extend the graph with a new interval. Incremental mutation is
// deliberately unsupported: the graph is a pure derivation of its input
// collection, and callers needing a different graph must Build a new one.
// Add always returns an UNSUPPORTED error.
func (g *Graph) Add(a ain.AIN) error {
	return errors.New(errors.ErrCodeUnsupported, "adding intervals to an existing graph is not implemented")
}

// NodeCount returns the number of nodes (one per collection element).
func (g *Graph) NodeCount() int { return len(g.ains) }

// EdgeCount returns the number of edges with non-zero weight.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns all edges ordered by (I, J) ascending. The pair scan in
// Build produces this order directly, so no sorting is needed. The returned
// slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// Weight returns the weight of edge {i, j} and whether the edge exists.
// The lookup is symmetric: Weight(i, j) == Weight(j, i).
func (g *Graph) Weight(i, j int) (float64, bool) {
	if i > j {
		i, j = j, i
	}
	w, ok := g.weights[[2]int{i, j}]
	return w, ok
}

// AIN returns the collection element at index i.
func (g *Graph) AIN(i int) ain.AIN { return g.ains[i] }

// AINs returns the underlying collection in construction order.
// The returned slice must not be modified.
func (g *Graph) AINs() []ain.AIN { return g.ains }

// String returns a textual summary listing all nodes and all edges with
// weights formatted to six decimal places.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph with %d nodes and %d edges.\n", g.NodeCount(), g.EdgeCount())
	b.WriteString("Nodes:\n")
	for i, a := range g.ains {
		fmt.Fprintf(&b, "\t%s %s\n", Label(i), a)
	}
	b.WriteString("Edges:\n")
	for _, e := range g.edges {
		fmt.Fprintf(&b, "\t%s --- %0.6f --- %s\n", g.ains[e.I], e.Weight, g.ains[e.J])
	}
	return b.String()
}

// Label returns the display label for a node index: "A".."Z" for the first
// 26 indices, then spreadsheet-style multi-letter labels ("AA", "AB", ...)
// so labels never collide for larger collections.
func Label(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}
