// Package binheap defines the heap kind, backend selection, options and
// sentinel errors.
package binheap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrEmpty is returned by ExtractRoot and Peek on an empty heap.
	ErrEmpty = errors.New("binheap: heap is empty")

	// ErrUnknownKind is returned by ParseKind for anything but "min"/"max".
	ErrUnknownKind = errors.New("binheap: unknown heap kind")
)

// Kind selects the heap order.
type Kind uint8

const (
	// Min keeps the smallest value at the root.
	Min Kind = iota
	// Max keeps the largest value at the root.
	Max
)

// String returns "min" or "max".
func (k Kind) String() string {
	if k == Max {
		return "max"
	}

	return "min"
}

// ParseKind maps "min"/"max" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	default:
		return Min, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Backend names accepted by WithBackend.
const (
	// BackendReference sifts with explicit loops over a slice.
	BackendReference = "reference"
	// BackendContainer delegates sifting to container/heap.
	BackendContainer = "container"
)

// Backend stores the array layout of a heap and keeps it ordered by less.
//
// Both implementations must produce identical layouts for identical
// operation sequences: sift-up swaps only while the child is strictly
// before its parent, and sift-down prefers the left child on ties.
type Backend[T any] interface {
	// Push appends v and sifts it up.
	Push(v T)
	// Pop removes and returns the root; callers check Len first.
	Pop() T
	// Peek returns the root; callers check Len first.
	Peek() T
	// Len returns the number of stored values.
	Len() int
	// Values returns a copy of the array layout.
	Values() []T
	// Reset drops every value.
	Reset()
}

// Options configures a Heap.
type Options struct {
	Backend string
}

// Option configures Options.
type Option func(*Options)

// WithBackend selects the storage backend by name. Unknown names fall back
// to BackendReference.
func WithBackend(name string) Option {
	return func(o *Options) {
		o.Backend = name
	}
}

// DefaultOptions returns Options selecting BackendReference.
func DefaultOptions() Options {
	return Options{Backend: BackendReference}
}
