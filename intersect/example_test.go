package intersect_test

import (
	"fmt"

	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/intersect"
)

func ExampleStrategy_Func() {
	a := []csr.VertexID{1, 3, 5, 7}
	b := []csr.VertexID{0, 3, 4, 7, 9}
	m := intersect.NewMarker(10)

	for _, s := range []intersect.Strategy{intersect.Hash, intersect.Merge, intersect.Binary} {
		fmt.Println(s, s.Func()(m, a, b))
	}
	// Output:
	// hash 2
	// merge 2
	// binary 2
}
