package avl

import "errors"

// ErrDuplicateKey is returned by Insert when the value is already present.
// The tree is left untouched.
var ErrDuplicateKey = errors.New("avl: duplicate key")

// Case names the imbalance a rotation repaired, after the path from the
// unbalanced node to the offending subtree.
type Case uint8

const (
	// CaseLL is fixed by a single right rotation.
	CaseLL Case = iota + 1
	// CaseRR is fixed by a single left rotation.
	CaseRR
	// CaseLR is fixed by a left rotation on the left child, then a right rotation.
	CaseLR
	// CaseRL is fixed by a right rotation on the right child, then a left rotation.
	CaseRL
)

// String returns "LL", "RR", "LR" or "RL".
func (c Case) String() string {
	switch c {
	case CaseLL:
		return "LL"
	case CaseRR:
		return "RR"
	case CaseLR:
		return "LR"
	case CaseRL:
		return "RL"
	default:
		return "?"
	}
}

// Rotation reports one rebalancing: its case and the value of the node
// that was out of balance.
type Rotation[T any] struct {
	Case Case
	At   T
}

// Option configures a Tree.
type Option[T any] func(*options[T])

type options[T any] struct {
	onRotate func(Rotation[T])
}

// WithOnRotate registers fn, called once per rebalancing during Insert and
// Delete, deepest node first.
func WithOnRotate[T any](fn func(Rotation[T])) Option[T] {
	return func(o *options[T]) {
		o.onRotate = fn
	}
}
