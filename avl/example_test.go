package avl_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/avl"
)

func ExampleWithOnRotate() {
	tr := avl.New[int](avl.WithOnRotate(func(r avl.Rotation[int]) {
		fmt.Printf("%s rotation at %d\n", r.Case, r.At)
	}))
	for _, v := range []int{10, 20, 30, 25, 27} {
		_ = tr.Insert(v)
	}
	root := tr.Root()
	fmt.Println(tr.InOrder(), "root", root.Value, "height", root.Height)
	// Output:
	// RR rotation at 10
	// LR rotation at 30
	// [10 20 25 27 30] root 20 height 3
}
