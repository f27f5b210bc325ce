// Package prim implements Prim's minimum spanning tree algorithm as a lazy
// sequence of steps.
//
// Each round scans all edges from tree nodes to non-tree nodes and adds the
// globally lightest one (first found wins ties), emitting one
// step.EdgeAdded per tree edge and step.Completed at the end. Edges are
// followed in their stored direction; build symmetric edges to model an
// undirected graph.
//
// The walk stops early when no crossing edge remains. That is not an
// error: Result.Spanning is false and Result.Edges holds the tree of the
// root's reachable part.
//
// API:
//
//	func Walk(g *core.Graph, root string, opts ...Option) (*Walker, error)
//	func Prim(g *core.Graph, root string, opts ...Option) (*Result, error)
//
// Options: WithContext, WithOnStep.
// Errors:  ErrNilGraph, ErrStartNodeNotFound.
package prim
