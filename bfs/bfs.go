// Package bfs provides breadth-first search over a core.Graph as a lazy
// sequence of observable steps, plus a run-to-completion helper.
package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// Walker is a single BFS run. It is a step.Sequence; ranging over Steps
// advances the search, and Result reflects everything done so far.
type Walker struct {
	step.Sequence

	graph   *core.Graph
	opts    BFSOptions
	start   string
	queue   *linkedlistqueue.Queue
	visited map[string]bool
	res     *Result
}

// Walk validates the input and returns a Walker positioned before the
// first step. Nothing is traversed until its Steps are consumed.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrStartNodeNotFound.
func Walk(g *core.Graph, startID string, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	w := &Walker{
		graph:   g,
		opts:    o,
		start:   startID,
		queue:   linkedlistqueue.New(),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.Sequence = step.Lazy(o.Ctx, w.run)

	return w, nil
}

// BFS runs breadth-first search on g from startID to completion, invoking
// the OnStep hook (if any) once per step.
// Returns the validation errors of Walk, ctx.Err() on cancellation, or the
// wrapped hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := Walk(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	return w.res, step.Drain(w, w.opts.OnStep)
}

// Result returns the traversal state accumulated so far.
func (w *Walker) Result() *Result { return w.res }

// run is the step producer.
func (w *Walker) run(emit func(step.Step) bool) {
	// Seed queue with start node (no parent)
	w.enqueue(w.start, 0, "")

	for !w.queue.Empty() {
		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.id)
		if !emit(step.Step{Kind: step.Visiting, Node: item.id, Frontier: w.frontier()}) {
			return
		}
		if !w.expand(item, emit) {
			return
		}
	}

	emit(step.Step{Kind: step.Completed})
}

// expand discovers every unvisited out-neighbor of item in edge-list order.
// It reports false once the consumer stopped.
func (w *Walker) expand(item queueItem, emit func(step.Step) bool) bool {
	edges, err := w.graph.OutEdges(item.id)
	if err != nil {
		// node removed between steps: nothing left to expand
		return true
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return true
	}
	for _, e := range edges {
		if w.visited[e.To] {
			continue
		}
		w.enqueue(e.To, nextDepth, item.id)
		if !emit(step.Step{Kind: step.EdgeDiscovered, From: item.id, To: e.To, Weight: e.Weight, Frontier: w.frontier()}) {
			return false
		}
	}

	return true
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *Walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// dequeue pops the first item.
func (w *Walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()

	return v.(queueItem)
}

// frontier copies the queue contents, head first.
func (w *Walker) frontier() []string {
	vals := w.queue.Values()
	ids := make([]string, len(vals))
	for i, v := range vals {
		ids[i] = v.(queueItem).id
	}

	return ids
}
