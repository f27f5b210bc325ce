// Package prim defines configuration options, sentinel errors and the
// result type for Prim's minimum spanning tree walk.
package prim

import (
	"context"
	"errors"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Prim.
var ErrNilGraph = errors.New("prim: graph is nil")

// ErrStartNodeNotFound indicates that the root node does not exist in the graph.
var ErrStartNodeNotFound = errors.New("prim: start node not found in graph")

// Options configures a Prim walk.
type Options struct {
	Ctx    context.Context
	OnStep func(s step.Step) error
}

// Option configures Options.
type Option func(*Options)

// WithContext sets a context whose cancellation aborts the walk.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a hook invoked for every step by Prim.
func WithOnStep(fn func(s step.Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result is the spanning tree grown so far.
//
// Fields:
//
//	Edges    []core.Edge — tree edges in the order they were added.
//	Total    float64     — sum of their weights.
//	Spanning bool        — every node of the graph joined the tree.
type Result struct {
	Edges    []core.Edge
	Total    float64
	Spanning bool
}
