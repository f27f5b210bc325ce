// Package bfs provides breadth-first search over a core.Graph, exposed as a
// lazy sequence of observable steps so a host can animate it one state
// transition at a time.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node,
//     following out-edges in edge-list order.
//   - Walk returns a *Walker implementing step.Sequence; BFS drains it.
//   - Result contains:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//
// Steps
//
//	Visiting(node)            once per dequeue, Frontier = queue after dequeue
//	EdgeDiscovered(from,to)   once per newly discovered neighbor (marked and enqueued)
//	Completed                 after the queue empties
//
// Determinism
//
//	Out-lists keep edge insertion order and BFS enqueues neighbors in that
//	order, so the step sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth map, Parent map, visited set
//
// Usage
//
//	// Run to completion:
//	res, err := bfs.BFS(g, "A")
//
//	// Pace it yourself:
//	w, err := bfs.Walk(g, "A", bfs.WithContext(ctx))
//	for s := range w.Steps() {
//	    draw(s)
//	    time.Sleep(interval)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled mid-run.
//   - Wrapped OnStep hook errors.
package bfs
