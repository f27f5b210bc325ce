package avl

import "golang.org/x/exp/constraints"

// rotateRight lifts y.left above y and returns the new subtree root.
//
//	    y          x
//	   / \        / \
//	  x   C  →   A   y
//	 / \            / \
//	A   B          B   C
func rotateRight[T constraints.Ordered](y *node[T]) *node[T] {
	x := y.left
	y.left = x.right
	x.right = y
	y.fixHeight()
	x.fixHeight()

	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T constraints.Ordered](x *node[T]) *node[T] {
	y := x.right
	x.right = y.left
	y.left = x
	x.fixHeight()
	y.fixHeight()

	return y
}
