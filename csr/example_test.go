package csr_test

import (
	"fmt"

	"github.com/katalvlaran/tricount/csr"
)

// ExampleFromEdges builds the 4-cycle 0-1-2-3-0 and prints its CSR arrays.
func ExampleFromEdges() {
	g, err := csr.FromEdges(4, [][2]csr.VertexID{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.RowPtr())
	fmt.Println(g.ColInd())
	fmt.Println(g.Neighbors(3), csr.Validate(g))
	// Output:
	// [0 2 4 6 8]
	// [1 3 0 2 1 3 0 2]
	// [0 2] <nil>
}
