// Package dfs implements iterative, stack-based depth-first search on
// core.Graph as a lazy sequence of observable steps.
//
// Key features:
//   - Walk(g, startID, opts...): pull-based step sequence
//   - DFS(g, startID, opts...): run to completion with an OnStep hook
//   - Neighbors are pushed in reverse edge-list order so the first-listed
//     neighbor is popped (and visited) first
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E); a node may sit on the stack once per in-edge.
//   - Memory: O(V + E) for the stack, O(V) for metadata maps.
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// stackItem is a pushed node and the node that pushed it.
type stackItem struct {
	id     string
	parent string // empty for root
}

// Walker encapsulates state during DFS and is itself a step.Sequence.
type Walker struct {
	step.Sequence

	graph   *core.Graph    // underlying graph
	opts    DFSOptions     // traversal options
	start   string         // root node
	stack   *arraystack.Stack
	visited map[string]bool
	res     *Result // result collector
}

// Walk validates input and returns a Walker positioned before the first step.
//
// Errors:
//   - ErrGraphNil, ErrStartNodeNotFound.
func Walk(g *core.Graph, startID string, opts ...Option) (*Walker, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	w := &Walker{
		graph:   g,
		opts:    dopts,
		start:   startID,
		stack:   arraystack.New(),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.Sequence = step.Lazy(dopts.Ctx, w.run)

	return w, nil
}

// DFS performs depth-first search on g from startID to completion.
// Returns Result or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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
	w.stack.Push(stackItem{id: w.start})

	for !w.stack.Empty() {
		v, _ := w.stack.Pop()
		item := v.(stackItem)
		// stale push: already reached through another path
		if w.visited[item.id] {
			continue
		}

		w.visit(item)
		if !emit(step.Step{Kind: step.Visiting, Node: item.id, Frontier: w.frontier()}) {
			return
		}
		if !w.pushNeighbors(item.id, emit) {
			return
		}
	}

	emit(step.Step{Kind: step.Completed})
}

// visit marks the node and records order, parent and depth.
func (w *Walker) visit(item stackItem) {
	w.visited[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	if item.parent == "" {
		w.res.Depth[item.id] = 0
		return
	}
	w.res.Parent[item.id] = item.parent
	w.res.Depth[item.id] = w.res.Depth[item.parent] + 1
}

// pushNeighbors pushes unvisited out-neighbors of id in reverse edge-list
// order, emitting EdgeDiscovered per push. Reports false once the consumer stopped.
func (w *Walker) pushNeighbors(id string, emit func(step.Step) bool) bool {
	edges, err := w.graph.OutEdges(id)
	if err != nil {
		// node removed between steps: nothing to push
		return true
	}
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if w.visited[e.To] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}
		w.stack.Push(stackItem{id: e.To, parent: id})
		if !emit(step.Step{Kind: step.EdgeDiscovered, From: id, To: e.To, Weight: e.Weight, Frontier: w.frontier()}) {
			return false
		}
	}

	return true
}

// frontier copies the stack contents, top first.
func (w *Walker) frontier() []string {
	vals := w.stack.Values()
	ids := make([]string, len(vals))
	for i, v := range vals {
		ids[i] = v.(stackItem).id
	}

	return ids
}
