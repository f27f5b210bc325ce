package avl

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// node is owned by exactly one parent slot (or the root field).
type node[T constraints.Ordered] struct {
	value       T
	height      int
	left, right *node[T]
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func (n *node[T]) fixHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[T]) balance() int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

// Tree is an AVL tree of distinct ordered values.
//
// Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
	opts options[T]
}

// New returns an empty tree.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{}
	for _, opt := range opts {
		opt(&t.opts)
	}

	return t
}

// Len returns the number of values.
func (t *Tree[T]) Len() int { return t.size }

// Height returns the height of the root, 0 when empty.
func (t *Tree[T]) Height() int { return height(t.root) }

// Contains reports whether v is in the tree. O(log n).
func (t *Tree[T]) Contains(v T) bool {
	for n := t.root; n != nil; {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Insert adds v as a leaf and rebalances the path back to the root.
// Returns ErrDuplicateKey, with the tree unchanged, when v is present.
func (t *Tree[T]) Insert(v T) error {
	if t.Contains(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, v)
	}
	t.root = t.insert(t.root, v)
	t.size++

	return nil
}

func (t *Tree[T]) insert(n *node[T], v T) *node[T] {
	if n == nil {
		return &node[T]{value: v, height: 1}
	}
	if v < n.value {
		n.left = t.insert(n.left, v)
	} else {
		n.right = t.insert(n.right, v)
	}
	n.fixHeight()

	// the new value tells which grandchild subtree grew
	b := n.balance()
	switch {
	case b > 1 && v < n.left.value:
		t.report(CaseLL, n.value)
		return rotateRight(n)
	case b < -1 && v > n.right.value:
		t.report(CaseRR, n.value)
		return rotateLeft(n)
	case b > 1 && v > n.left.value:
		t.report(CaseLR, n.value)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && v < n.right.value:
		t.report(CaseRL, n.value)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Delete removes v and reports whether it was present. A node with two
// children takes the value of its in-order successor, which is then
// deleted from the right subtree.
func (t *Tree[T]) Delete(v T) bool {
	if !t.Contains(v) {
		return false
	}
	t.root = t.delete(t.root, v)
	t.size--

	return true
}

func (t *Tree[T]) delete(n *node[T], v T) *node[T] {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = t.delete(n.left, v)
	case v > n.value:
		n.right = t.delete(n.right, v)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.value = succ.value
		n.right = t.delete(n.right, succ.value)
	}
	n.fixHeight()

	// after a delete only the subtree balances are known
	b := n.balance()
	switch {
	case b > 1 && n.left.balance() >= 0:
		t.report(CaseLL, n.value)
		return rotateRight(n)
	case b > 1:
		t.report(CaseLR, n.value)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && n.right.balance() <= 0:
		t.report(CaseRR, n.value)
		return rotateLeft(n)
	case b < -1:
		t.report(CaseRL, n.value)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func (t *Tree[T]) report(c Case, at T) {
	if t.opts.onRotate != nil {
		t.opts.onRotate(Rotation[T]{Case: c, At: at})
	}
}

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// All yields the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkInOrder(t.root, yield)
	}
}

func walkInOrder[T constraints.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return walkInOrder(n.left, yield) && yield(n.value) && walkInOrder(n.right, yield)
}

// InOrder returns the values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	for v := range t.All() {
		out = append(out, v)
	}

	return out
}
