// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a per-step hook, neighbor filtering and basic
// diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/dsviz/step"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...) or Walk(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnStep, if non-nil, is invoked by DFS for every step.
	// Returning an error aborts traversal with that error.
	OnStep func(s step.Step) error

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it
	// is pushed. Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No step hook
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnStep returns an Option that installs fn as the per-step hook.
func WithOnStep(fn func(s step.Step) error) Option {
	return func(o *DFSOptions) {
		o.OnStep = fn
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they were visited (pre-order).
	Order []string

	// Depth maps each visited node ID to its tree depth from the start.
	Depth map[string]int

	// Parent maps each visited node ID to the node whose push was popped
	// first. The start node does not appear in this map.
	Parent map[string]string

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
