// Package step defines the observable step protocol shared by every
// traversal in dsviz.
//
// What
//
//   - Step is a single state transition of an algorithm: a node being
//     visited, an edge discovered, a distance relaxed, an MST edge added,
//     or the terminal Completed marker.
//   - Sequence is a lazy, single-use, pull-based stream of Steps. Nothing
//     runs until the caller ranges over Steps() (or pulls it with iter.Pull),
//     so pacing belongs entirely to the host: a ticker, a frame callback,
//     or a synchronous test loop.
//
// Cancellation
//
//	A Sequence stops as soon as the consumer stops pulling or the context it
//	was created with is done. Traversals only mutate their own transient
//	state, so abandoning a Sequence half-way is always safe. Err reports why
//	a Sequence ended early:
//	  - ErrAborted        consumer stopped before Completed was delivered.
//	  - ctx.Err()         the context was cancelled or timed out.
//
// Usage
//
//	seq, err := bfs.Walk(g, "A")
//	if err != nil {
//	    // bfs.ErrStartNodeNotFound, ...
//	}
//	next, stop := iter.Pull(seq.Steps())
//	defer stop()
//	for s, ok := next(); ok; s, ok = next() {
//	    render(s) // one step per tick
//	}
package step
