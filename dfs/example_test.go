package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/dfs"
	"github.com/katalvlaran/dsviz/step"
)

// ExampleDFS prints the visit order and the stack at every visit.
func ExampleDFS() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("B", "D")

	res, err := dfs.DFS(g, "A", dfs.WithOnStep(func(s step.Step) error {
		if s.Kind == step.Visiting {
			fmt.Println(s.Node, s.Frontier)
		}
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// A []
	// B [C]
	// D [C]
	// C []
	// [A B D C]
}
