// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
//
// Determinism:
//   - Edges() lists edges by source in node insertion order, then by the
//     source's out-list order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "fmt"

// AddEdge appends to to from's out-list and records the weight.
// Adding an edge that already exists is a silent no-op: the stored weight
// is kept and added reports false.
//
// Errors:
//   - ErrNodeNotFound: if from or to is absent; nothing is mutated.
//
// Complexity: O(deg(from)).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (added bool, err error) {
	e := Edge{From: from, To: to, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Both endpoints must exist before anything changes.
	out, ok := g.outList(from)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok = g.nodes.Get(to); !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	// 2) Idempotent on existing edges.
	if _, exists := g.weights[edgeKey{from: from, to: to}]; exists {
		return false, nil
	}

	g.nodes.Put(from, append(out, to))
	g.weights[edgeKey{from: from, to: to}] = e.Weight
	g.edges++

	return true, nil
}

// RemoveEdge removes from→to and its weight. Unknown sources and missing
// edges are no-ops; removed reports whether an edge was dropped.
//
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to string) (removed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.outList(from)
	if !ok {
		return false
	}
	for i, id := range out {
		if id != to {
			continue
		}
		kept := make([]string, 0, len(out)-1)
		kept = append(kept, out[:i]...)
		kept = append(kept, out[i+1:]...)
		g.nodes.Put(from, kept)
		delete(g.weights, edgeKey{from: from, to: to})
		g.edges--

		return true
	}

	return false
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.weights[edgeKey{from: from, to: to}]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[edgeKey{from: from, to: to}]

	return w, ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge in deterministic order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// OutEdges returns id's outgoing edges in out-list order, weights included.
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.outList(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	edges := make([]Edge, len(out))
	for i, to := range out {
		edges[i] = Edge{From: id, To: to, Weight: g.weights[edgeKey{from: id, to: to}]}
	}

	return edges, nil
}

// edgesLocked lists all edges. Caller holds mu.
func (g *Graph) edgesLocked() []Edge {
	edges := make([]Edge, 0, g.edges)
	it := g.nodes.Iterator()
	for it.Next() {
		from := it.Key().(string)
		for _, to := range it.Value().([]string) {
			edges = append(edges, Edge{From: from, To: to, Weight: g.weights[edgeKey{from: from, to: to}]})
		}
	}

	return edges
}
