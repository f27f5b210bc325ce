package binheap

import "container/heap"

// newBackend returns the backend registered under name, or the reference
// backend together with its name when name is unknown.
func newBackend[T any](name string, less func(a, b T) bool) (Backend[T], string) {
	switch name {
	case BackendContainer:
		return &containerBackend[T]{h: &baseHeap[T]{less: less}}, BackendContainer
	default:
		return &referenceBackend[T]{less: less}, BackendReference
	}
}

// referenceBackend sifts with explicit loops.
type referenceBackend[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (r *referenceBackend[T]) Push(v T) {
	r.items = append(r.items, v)
	r.siftUp(len(r.items) - 1)
}

func (r *referenceBackend[T]) Pop() T {
	root := r.items[0]
	last := len(r.items) - 1
	r.items[0] = r.items[last]
	var zero T
	r.items[last] = zero
	r.items = r.items[:last]
	if len(r.items) > 0 {
		r.siftDown(0)
	}

	return root
}

func (r *referenceBackend[T]) Peek() T { return r.items[0] }

func (r *referenceBackend[T]) Len() int { return len(r.items) }

func (r *referenceBackend[T]) Values() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)

	return out
}

func (r *referenceBackend[T]) Reset() { r.items = nil }

// siftUp moves items[i] towards the root while it strictly precedes its parent.
func (r *referenceBackend[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !r.less(r.items[i], r.items[parent]) {
			return
		}
		r.items[i], r.items[parent] = r.items[parent], r.items[i]
		i = parent
	}
}

// siftDown moves items[i] down, swapping with the preferred child: the
// left one unless the right one strictly precedes it.
func (r *referenceBackend[T]) siftDown(i int) {
	n := len(r.items)
	for {
		best := i
		left, right := 2*i+1, 2*i+2
		if left < n && r.less(r.items[left], r.items[best]) {
			best = left
		}
		if right < n && r.less(r.items[right], r.items[best]) {
			best = right
		}
		if best == i {
			return
		}
		r.items[i], r.items[best] = r.items[best], r.items[i]
		i = best
	}
}

// baseHeap implements heap.Interface over a slice with an injected less.
type baseHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *baseHeap[T]) Len() int           { return len(h.items) }
func (h *baseHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *baseHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *baseHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *baseHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	h.items = old[:n-1]

	return x
}

// containerBackend drives baseHeap through container/heap.
type containerBackend[T any] struct {
	h *baseHeap[T]
}

func (c *containerBackend[T]) Push(v T) { heap.Push(c.h, v) }

func (c *containerBackend[T]) Pop() T { return heap.Pop(c.h).(T) }

func (c *containerBackend[T]) Peek() T { return c.h.items[0] }

func (c *containerBackend[T]) Len() int { return c.h.Len() }

func (c *containerBackend[T]) Values() []T {
	out := make([]T, len(c.h.items))
	copy(out, c.h.items)

	return out
}

func (c *containerBackend[T]) Reset() { c.h.items = nil }
