package relation_test

import (
	"fmt"

	"github.com/ainkit/ainviz/pkg/ain"
	"github.com/ainkit/ainviz/pkg/relation"
)

func ExampleBuild() {
	// Three intervals: the middle one overlaps both neighbors.
	a, _ := ain.New(0, 2)
	b, _ := ain.New(1, 5)
	c, _ := ain.New(3, 4)
	ains := []ain.AIN{a, b, c}

	// Directional preference degrees from an external comparison step.
	cmp, _ := ain.NewMatrixComparator(ains, [][]float64{
		{0, 0.5, 0},
		{0.5, 0, 0.5},
		{1, 0.5, 0},
	})

	g, _ := relation.Build(ains, cmp)
	w, _ := g.Weight(0, 1)

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Printf("Weight A-B: %.2f\n", w)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Weight A-B: 0.25
}

func ExampleLabel() {
	fmt.Println(relation.Label(0), relation.Label(25), relation.Label(26), relation.Label(702))
	// Output: A Z AA AAA
}
