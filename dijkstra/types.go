// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted directed graphs.
//
// Dijkstra computes the minimum-cost path from a single start node to all
// other reachable nodes. Results are exact for non-negative weights; negative
// weights are relaxed as given, and a reachable negative cycle keeps the walk
// going until its context is cancelled or the consumer stops pulling.
//
// Options:
//
//	– WithContext(ctx):  cancel a running walk.
//	– WithOnStep(fn):    per-step hook used by Dijkstra.
//	– WithRejectNegative(): fail with ErrNegativeWeight if any edge is negative.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrStartNodeNotFound if the start node does not exist in the graph.
//	– ErrNegativeWeight    with WithRejectNegative, if any edge weight is negative.
//	– ErrUnreachable       from Result.PathTo for nodes never reached.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dsviz/step"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node does not
	// exist in the provided graph.
	ErrStartNodeNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path to the requested node was found.
	ErrUnreachable = errors.New("dijkstra: node unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx    context.Context          // cancellation for Walk and Dijkstra
	OnStep func(s step.Step) error // per-step hook used by Dijkstra

	// RejectNegative makes Walk scan every edge and refuse negative weights.
	RejectNegative bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback invoked once per step by Dijkstra.
func WithOnStep(fn func(s step.Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithRejectNegative makes Walk return ErrNegativeWeight when any edge of
// the graph, reachable or not, has a negative weight.
func WithRejectNegative() Option {
	return func(o *Options) {
		o.RejectNegative = true
	}
}

// DefaultOptions returns an Options struct initialized with a background
// context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result holds distances and predecessors computed by Dijkstra.
//
//   - Dist:  node ID → best known distance (math.Inf(1) if unreachable).
//   - Prev:  node ID → predecessor on the best path; absent for the start
//     and for unreachable nodes.
//   - Order: nodes in the order they were processed (popped non-stale).
type Result struct {
	Dist  map[string]float64
	Prev  map[string]string
	Order []string
}

// PathTo reconstructs the shortest path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
