// Package dfs provides depth-first search over a core.Graph, exposed as a
// lazy sequence of observable steps.
//
// Algorithm
//
//	stack ← [start]
//	while stack not empty:
//	    v ← pop
//	    if v visited: continue
//	    mark v, emit Visiting(v)
//	    for each out-neighbor u of v, last listed first:
//	        if u unvisited: push u, emit EdgeDiscovered(v,u)
//	emit Completed
//
// Pushing in reverse edge-list order means the first-listed neighbor is
// on top of the stack, so the visit order reads left-to-right the way a
// recursive DFS would.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnStep(fn)            per-step hook used by DFS; error aborts traversal.
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartNodeNotFound      if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnStep (wrapped).
package dfs
