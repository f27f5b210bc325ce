// Package avl implements a generic AVL tree: a binary search tree that
// keeps |height(left) - height(right)| ≤ 1 at every node by rotating on
// the way back from each Insert and Delete.
//
// Rebalancing after Insert looks at the inserted value relative to the
// child on the heavy side (LL, RR, LR, RL). Rebalancing after Delete looks
// at the heavy child's own balance instead: a left-heavy node rotates right
// when its left child has balance ≥ 0 and double-rotates otherwise; the
// right side mirrors with ≤ 0.
//
// Duplicates are rejected with ErrDuplicateKey; deleting an absent value
// is a no-op reported by Delete's boolean. WithOnRotate observes every
// rebalancing, and Root returns a read-only copy with heights and balance
// factors for drawing.
//
// Floating-point NaN values have no place in the order and must not be
// inserted.
package avl
