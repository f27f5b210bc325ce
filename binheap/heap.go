package binheap

import "golang.org/x/exp/constraints"

// Heap is a binary heap over ordered values, stored as an implicit complete
// tree in an array: the children of i are 2i+1 and 2i+2.
//
// Heap is not safe for concurrent use.
type Heap[T constraints.Ordered] struct {
	kind    Kind
	backend string
	store   Backend[T]
}

// New returns an empty heap of the given kind.
func New[T constraints.Ordered](kind Kind, opts ...Option) *Heap[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &Heap[T]{kind: kind}
	h.store, h.backend = newBackend[T](cfg.Backend, lessFor[T](kind))

	return h
}

// lessFor returns the "precedes" relation of kind: a < b for Min, a > b for Max.
func lessFor[T constraints.Ordered](kind Kind) func(a, b T) bool {
	if kind == Max {
		return func(a, b T) bool { return a > b }
	}

	return func(a, b T) bool { return a < b }
}

// Insert adds v. Duplicates are allowed. O(log n).
func (h *Heap[T]) Insert(v T) { h.store.Push(v) }

// ExtractRoot removes and returns the root (the min or max). O(log n).
// Returns ErrEmpty on an empty heap.
func (h *Heap[T]) ExtractRoot() (T, error) {
	if h.store.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.store.Pop(), nil
}

// Peek returns the root without removing it, or ErrEmpty.
func (h *Heap[T]) Peek() (T, error) {
	if h.store.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.store.Peek(), nil
}

// Clear drops every value.
func (h *Heap[T]) Clear() { h.store.Reset() }

// Values returns a copy of the exact array layout.
func (h *Heap[T]) Values() []T { return h.store.Values() }

// Len returns the number of values.
func (h *Heap[T]) Len() int { return h.store.Len() }

// Kind returns the heap order.
func (h *Heap[T]) Kind() Kind { return h.kind }

// Backend returns the name of the backend in use.
func (h *Heap[T]) Backend() string { return h.backend }

// Convert returns a new heap of kind on the same backend, filled by
// inserting the values of h in array order. h is left unchanged.
func (h *Heap[T]) Convert(kind Kind) *Heap[T] {
	out := New[T](kind, WithBackend(h.backend))
	for _, v := range h.store.Values() {
		out.Insert(v)
	}

	return out
}
