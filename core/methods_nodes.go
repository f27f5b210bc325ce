// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "fmt"

// AddNode inserts a node with an empty out-list.
//
// Errors:
//   - ErrEmptyNodeID:   if id == "".
//   - ErrDuplicateNode: if id is already present; the graph is unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes.Get(id); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes.Put(id, []string{})

	return nil
}

// RemoveNode deletes id, its out-list and weights, and strips id from every
// other node's out-list together with the matching weight entries.
//
// Errors:
//   - ErrNodeNotFound: if id is absent; the graph is unchanged.
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.outList(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	// 1) Drop id's own edges.
	for _, to := range out {
		delete(g.weights, edgeKey{from: id, to: to})
	}
	g.edges -= len(out)
	g.nodes.Remove(id)

	// 2) Strip id as a destination from every remaining out-list.
	for _, k := range g.nodes.Keys() {
		from := k.(string)
		list, _ := g.outList(from)
		kept := list[:0:0]
		for _, to := range list {
			if to == id {
				delete(g.weights, edgeKey{from: from, to: to})
				g.edges--
				continue
			}
			kept = append(kept, to)
		}
		if len(kept) != len(list) {
			g.nodes.Put(from, kept)
		}
	}

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes.Get(id)

	return ok
}

// Nodes returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := g.nodes.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Size()
}

// Neighbors returns a copy of id's out-list in edge insertion order.
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.outList(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return append([]string(nil), out...), nil
}

// Clear empties nodes, edges and weights.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes.Clear()
	g.weights = make(map[edgeKey]float64)
	g.edges = 0
}
