package builder_test

import (
	"fmt"

	"github.com/katalvlaran/tricount/builder"
)

// ExampleBuildGraph builds the 5-vertex wheel: a hub joined to a 4-cycle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	fmt.Println(g.Neighbors(builder.CenterVertex))
	fmt.Println(g.Neighbors(1))
	// Output:
	// csr.Graph{n=5 m=16}
	// [1 2 3 4]
	// [0 2 4]
}

// ExampleRandomSparse shows seeded sampling of G(n,p).
func ExampleRandomSparse() {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, _ := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	b, _ := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	fmt.Println(a.VertexCount(), a.Equal(b))
	// Output:
	// 30 true
}
