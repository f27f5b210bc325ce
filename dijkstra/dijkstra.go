// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted directed graphs as a lazy sequence of observable steps.
//
// Notes on implementation choices:
//
//   - Negative weights are relaxed like any other; WithRejectNegative adds an
//     upfront O(E) scan that fails fast instead.
//   - We use a “lazy” decrease-key strategy: pushing duplicates and ignoring
//     stale entries whose distance exceeds the current best.
//   - The priority structure is ordered by (distance, push sequence), so
//     entries with equal distance leave in the order they were pushed.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// pqDegree is the B-tree degree of the priority structure.
const pqDegree = 8

// nodeItem represents a node and the distance it was pushed with.
type nodeItem struct {
	id   string  // node ID
	dist float64 // distance from start at push time
	seq  uint64  // push sequence, tie-breaker
}

// lessItem orders by distance, then by push sequence.
func lessItem(a, b nodeItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.seq < b.seq
}

// Walker holds the mutable state for a single Dijkstra execution and is a
// step.Sequence.
type Walker struct {
	step.Sequence

	g       *core.Graph             // read-only within Dijkstra
	options Options                 // configuration
	start   string                  // start node
	pq      *btree.BTreeG[nodeItem] // min-ordered entries (lazy)
	seq     uint64                  // next push sequence
	res     *Result                 // distances, predecessors, order
}

// Walk validates input and returns a Walker positioned before the first step.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrStartNodeNotFound).
//  3. With WithRejectNegative, no edge in g may have a negative weight
//     (ErrNegativeWeight).
func Walk(g *core.Graph, start string, opts ...Option) (*Walker, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}
	if cfg.RejectNegative {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	n := g.NodeCount()
	r := &Walker{
		g:       g,
		options: cfg,
		start:   start,
		pq:      btree.NewG[nodeItem](pqDegree, lessItem),
		res: &Result{
			Dist:  make(map[string]float64, n),
			Prev:  make(map[string]string, n),
			Order: make([]string, 0, n),
		},
	}
	r.Sequence = step.Lazy(cfg.Ctx, r.run)

	return r, nil
}

// Dijkstra computes shortest distances from start to every node of g,
// invoking the OnStep hook (if any) once per step.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start string, opts ...Option) (*Result, error) {
	r, err := Walk(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return r.res, step.Drain(r, r.options.OnStep)
}

// Result returns distances and predecessors computed so far.
func (r *Walker) Result() *Result { return r.res }

// run is the step producer.
func (r *Walker) run(emit func(step.Step) bool) {
	r.init()

	for r.pq.Len() > 0 {
		// 1) Pop the smallest (distance, seq) entry.
		item, _ := r.pq.DeleteMin()

		// 2) Skip stale entries whose recorded distance is no longer the best.
		if item.dist > r.distance(item.id) {
			continue
		}

		r.res.Order = append(r.res.Order, item.id)
		if !emit(step.Step{Kind: step.Visiting, Node: item.id, Distance: r.res.Dist[item.id]}) {
			return
		}

		// 3) Relax all outgoing edges.
		if !r.relax(item.id, emit) {
			return
		}
	}

	emit(step.Step{Kind: step.Completed})
}

// init sets dist[v] = +∞ for every node, dist[start] = 0, and pushes start.
func (r *Walker) init() {
	for _, v := range r.g.Nodes() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.start] = 0
	r.push(r.start, 0)
}

// relax examines each edge outgoing from u and improves distances to its
// neighbors. Reports false once the consumer stopped.
func (r *Walker) relax(u string, emit func(step.Step) bool) bool {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		// node removed between steps: nothing to relax
		return true
	}
	du := r.res.Dist[u]
	for _, e := range edges {
		alt := du + e.Weight
		// strictly better only; equal distances keep the first predecessor
		if alt >= r.distance(e.To) {
			continue
		}
		r.res.Dist[e.To] = alt
		r.res.Prev[e.To] = u
		r.push(e.To, alt)
		if !emit(step.Step{Kind: step.EdgeRelaxed, From: u, To: e.To, Weight: e.Weight, Distance: alt}) {
			return false
		}
	}

	return true
}

// distance returns the best known distance of id, +∞ when unknown
// (including nodes added after the walk started).
func (r *Walker) distance(id string) float64 {
	if d, ok := r.res.Dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// push inserts a new entry; older entries for id stay and go stale.
func (r *Walker) push(id string, dist float64) {
	r.pq.ReplaceOrInsert(nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}
