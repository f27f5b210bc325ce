package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/dijkstra"
)

// ExampleDijkstra finds the cheaper detour A→C→B.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
	_, _ = g.AddEdge("A", "C", core.WithWeight(1))
	_, _ = g.AddEdge("C", "B", core.WithWeight(1))

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("B")
	fmt.Println(res.Dist["B"], path)
	fmt.Println(res.Order)
	// Output:
	// 2 [A C B]
	// [A C B]
}
