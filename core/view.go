// File: view.go
// Role: Structural snapshots for the presentation layer and rebuilding a
//       graph from a snapshot.
// Concurrency:
//   - Snapshot takes the read lock once; the result shares no memory with g.
package core

import "fmt"

// Snapshot is a detached copy of a graph's structure.
type Snapshot struct {
	// Nodes in insertion order.
	Nodes []string

	// Edges grouped by source in node order, then out-list order.
	Edges []Edge
}

// Snapshot captures the node set and edge list with weights.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := g.nodes.Keys()
	nodes := make([]string, len(keys))
	for i, k := range keys {
		nodes[i] = k.(string)
	}

	return Snapshot{Nodes: nodes, Edges: g.edgesLocked()}
}

// FromSnapshot rebuilds a Graph by replaying AddNode and AddEdge in
// snapshot order, so the result has the same node order and out-lists.
//
// Errors:
//   - any AddNode/AddEdge error, wrapped with the offending item.
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := NewGraph()
	for _, id := range s.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("core: restore node: %w", err)
		}
	}
	for _, e := range s.Edges {
		if _, err := g.AddEdge(e.From, e.To, WithWeight(e.Weight)); err != nil {
			return nil, fmt.Errorf("core: restore edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	// A snapshot never holds duplicates or dangling edges, so replay cannot fail.
	out, _ := FromSnapshot(g.Snapshot())

	return out
}
