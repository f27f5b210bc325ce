package avl

import "golang.org/x/exp/constraints"

// Node is a detached copy of one tree node, as a renderer labels it.
type Node[T constraints.Ordered] struct {
	Value   T
	Height  int
	Balance int // height(Left) - height(Right)
	Left    *Node[T]
	Right   *Node[T]
}

// Root returns a copy of the tree structure, nil when empty. Changing the
// copy does not affect the tree.
func (t *Tree[T]) Root() *Node[T] {
	return snapshot(t.root)
}

func snapshot[T constraints.Ordered](n *node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	return &Node[T]{
		Value:   n.value,
		Height:  n.height,
		Balance: n.balance(),
		Left:    snapshot(n.left),
		Right:   snapshot(n.right),
	}
}
