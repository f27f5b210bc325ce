package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/bfs"
	"github.com/katalvlaran/dsviz/core"
)

// ExampleWalk prints every step of a BFS over a small directed graph.
func ExampleWalk() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("B", "D")

	w, err := bfs.Walk(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for s := range w.Steps() {
		switch s.Kind.String() {
		case "visiting":
			fmt.Println("visit", s.Node, s.Frontier)
		case "edge-discovered":
			fmt.Println("discover", s.From, "→", s.To)
		default:
			fmt.Println(s.Kind)
		}
	}
	// Output:
	// visit A []
	// discover A → B
	// discover A → C
	// visit B [C]
	// discover B → D
	// visit C [D]
	// visit D []
	// completed
}
