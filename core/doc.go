// Package core provides the directed, weighted in-memory Graph that the
// bfs, dfs, dijkstra and prim packages traverse.
//
// The Graph G = (V,E) keeps:
//
//   - an insertion-ordered node catalogue (each ID present at most once),
//   - per node, an ordered out-list of destinations (insertion order,
//     duplicates suppressed),
//   - a weight table keyed by (from, to), DefaultWeight (1) unless set with
//     WithWeight.
//
// Invariants:
//
//   - Every edge endpoint exists at the time the edge is created.
//   - RemoveNode cascades: the node's out-list, every edge pointing at it
//     and all matching weight entries disappear together.
//   - Every check precedes mutation; a failing call leaves the graph as it was.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error                                  // O(1), ErrDuplicateNode
//	RemoveNode(id string) error                               // O(V+E), ErrNodeNotFound
//	HasNode(id string) bool                                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (bool, error) // O(deg), idempotent
//	RemoveEdge(from, to string) bool                           // O(deg), no-op on unknown source
//	HasEdge(from, to string) bool                              // O(1)
//	Weight(from, to string) (float64, bool)                    // O(1)
//
//	// Query
//	Nodes() []string                     // insertion order
//	Neighbors(id string) ([]string, error)
//	OutEdges(id string) ([]Edge, error)
//	Edges() []Edge
//	NodeCount(), EdgeCount() int
//
//	// Snapshots
//	Snapshot() Snapshot
//	FromSnapshot(Snapshot) (*Graph, error)
//	Clone() *Graph
//
//	// Maintenance
//	Clear()
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards
//	the graph. Traversals take the read lock per query, so a host may mutate
//	the graph between steps of a running traversal.
package core
