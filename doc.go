// Package dsviz is a teaching playground for classic data structures whose
// every state change is observable, so a front end can draw and animate it.
//
// 🚀 What is in the box?
//
//	• Binary heap: min or max, exact array layout, two interchangeable backends
//	• AVL tree: rotation reporting, node view with heights and balance factors
//	• Directed weighted graph: BFS, DFS, Dijkstra and Prim as lazy step sequences
//	• Hash table: chaining or linear probing, rebuild on resize or strategy change
//
// ✨ Design in one breath:
//
//   - Structures never log and never sleep; they return values and errors.
//   - Traversals are pull-based (iter.Seq) and abortable via context or by
//     simply stopping the pull. The host decides the pace (see player/).
//   - Switching a heap's order or a table's capacity is a migration that
//     builds a new instance; the old one is untouched on failure.
//
// Layout:
//
//	step/       — Step, Kind and the Sequence contract shared by all traversals
//	core/       — the Graph: insertion-ordered nodes, ordered out-lists, weights
//	bfs/ dfs/   — breadth- and depth-first traversal
//	dijkstra/   — shortest paths with stable ordering among equal distances
//	prim/       — minimum spanning tree by global lightest crossing edge
//	binheap/    — generic binary heap
//	avl/        — generic AVL tree
//	hashtable/  — fixed-capacity string-keyed table
//	builder/    — seeded graph presets: path, cycle, star, wheel, grid, …
//	player/     — paces a Sequence on a ticker with pause/resume/stop
//	cmd/dsviz   — scripted console over all of the above
//	examples/   — runnable end-to-end scenarios
//
// Quick ASCII example:
//
//	    A──4──►B
//	    │      ▲
//	    1      1
//	    ▼      │
//	    C──────┘
//
//	Dijkstra from A settles A(0), C(1), B(2): the detour beats the direct edge.
package dsviz
