// Package prim grows a minimum spanning tree from a root node of a
// directed weighted *core.Graph, one observable step per tree edge.
package prim

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// Walker holds the state of one Prim run and is a step.Sequence.
type Walker struct {
	step.Sequence

	g      *core.Graph
	opts   Options
	root   string
	inTree *linkedhashset.Set // node IDs, in the order they joined
	res    *Result
}

// Walk validates input and returns a Walker positioned before the first step.
//
// Error Conditions:
//   - ErrNilGraph          : g is nil.
//   - ErrStartNodeNotFound : root is not a node of g.
func Walk(g *core.Graph, root string, opts ...Option) (*Walker, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, root)
	}

	w := &Walker{
		g:      g,
		opts:   cfg,
		root:   root,
		inTree: linkedhashset.New(root),
		res:    &Result{Edges: make([]core.Edge, 0, g.NodeCount())},
	}
	w.Sequence = step.Lazy(cfg.Ctx, w.run)

	return w, nil
}

// Prim runs the walk to completion, calling the OnStep hook for every step.
//
// Steps:
//  1. inTree = {root}.
//  2. While some node is outside the tree: scan every edge from an in-tree
//     node (in join order) to an out-of-tree node (in out-list order) and
//     keep the strictly lightest; the first one found wins ties.
//  3. No crossing edge left → stop early. A disconnected graph is not an
//     error; Result.Spanning reports it.
//
// Complexity: O(V · E) time, O(V) memory.
func Prim(g *core.Graph, root string, opts ...Option) (*Result, error) {
	w, err := Walk(g, root, opts...)
	if err != nil {
		return nil, err
	}

	return w.res, step.Drain(w, w.opts.OnStep)
}

// Result returns the tree grown so far.
func (w *Walker) Result() *Result { return w.res }

func (w *Walker) run(emit func(step.Step) bool) {
	for w.inTree.Size() < w.g.NodeCount() {
		best, ok := w.lightestCrossing()
		if !ok {
			break
		}
		w.inTree.Add(best.To)
		w.res.Edges = append(w.res.Edges, best)
		w.res.Total += best.Weight
		if !emit(step.Step{Kind: step.EdgeAdded, From: best.From, To: best.To, Weight: best.Weight}) {
			return
		}
	}
	w.res.Spanning = w.inTree.Size() >= w.g.NodeCount()

	emit(step.Step{Kind: step.Completed})
}

// lightestCrossing returns the minimum-weight edge leaving the tree.
func (w *Walker) lightestCrossing() (core.Edge, bool) {
	var (
		best     core.Edge
		found    bool
		lightest = math.Inf(1)
	)
	for _, v := range w.inTree.Values() {
		edges, err := w.g.OutEdges(v.(string))
		if err != nil {
			// removed since it joined
			continue
		}
		for _, e := range edges {
			if w.inTree.Contains(e.To) {
				continue
			}
			if e.Weight < lightest {
				lightest, best, found = e.Weight, e, true
			}
		}
	}

	return best, found
}
