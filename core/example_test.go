package core_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/core"
)

// ExampleGraph_RemoveNode shows the cascade of a node removal.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A", core.WithWeight(2))

	_ = g.RemoveNode("B")
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s (%g)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// C→A (2)
}
