package timeline_test

import (
	"fmt"

	"github.com/ainkit/ainviz/pkg/ain"
	"github.com/ainkit/ainviz/pkg/timeline"
)

func ExamplePack() {
	// The first and last intervals share a level; the middle one conflicts
	// with the level's seed and opens a new row.
	a, _ := ain.New(0, 2)
	b, _ := ain.New(1, 5)
	c, _ := ain.New(3, 4)
	ains := []ain.AIN{a, b, c}

	cmp, _ := ain.NewMatrixComparator(ains, [][]float64{
		{0, 0.5, 0},
		{0.5, 0, 0.5},
		{1, 0.5, 0},
	})

	levels := timeline.Pack(ains, cmp)
	fmt.Println(levels)
	// Output: [[0 2] [1]]
}
