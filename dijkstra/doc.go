// Package dijkstra provides Dijkstra's shortest-path algorithm on directed
// graphs, exposed as a lazy sequence of
// observable steps.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single start node to all
//     reachable nodes in O((V + E) log V) time.
//   - The frontier is a B-tree ordered by (distance, push sequence): among
//     equal distances the earliest pushed entry leaves first.
//   - Improvements push a fresh entry; entries whose distance exceeds the
//     best known one are skipped when popped (lazy deletion).
//
// Steps:
//
//   - step.Visiting per non-stale pop, Distance = settled distance.
//   - step.EdgeRelaxed per strictly improving relaxation (From, To, Weight,
//     Distance = new distance).
//   - step.Completed once the frontier is empty.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrStartNodeNotFound: start node missing from the graph.
//   - ErrNegativeWeight:    with WithRejectNegative, any edge has a negative
//     weight (O(E) pre-scan, before any step). Without it negative weights
//     are relaxed as given.
//   - ErrUnreachable:       Result.PathTo on a node with infinite distance.
//
// API reference:
//
//	func Walk(g *core.Graph, start string, opts ...Option) (*Walker, error)
//	func Dijkstra(g *core.Graph, start string, opts ...Option) (*Result, error)
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A")
//	if err != nil { … }
//	path, _ := res.PathTo("B")
package dijkstra
