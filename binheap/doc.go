// Package binheap implements a generic binary min-heap or max-heap whose
// array layout is observable.
//
// The layout is part of the contract: Values returns exactly the array a
// visualiser would draw, so both backends perform the same swaps. Sift-up
// stops at the first parent that does not strictly follow the child;
// sift-down picks the left child unless the right one strictly precedes it.
//
// Backends:
//
//	BackendReference — explicit sift loops over a slice (default).
//	BackendContainer — container/heap over an adapter with an injected less.
//
// Switching between min and max is a migration, not a mutation: Convert
// builds a new heap by inserting the old array in order.
//
// Example:
//
//	h := binheap.New[int](binheap.Min)
//	h.Insert(5)
//	h.Insert(3)
//	root, _ := h.ExtractRoot() // 3
package binheap
