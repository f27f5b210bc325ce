// Package core defines the directed, weighted Graph that every traversal in
// dsviz reads from, together with its Edge type and sentinel errors.
//
// A single sync.RWMutex (mu) guards the node catalogue, the ordered
// out-lists and the weight table, so traversals may read the graph while the
// host mutates it between steps.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist (UnknownNode).
//	ErrDuplicateNode  - node already present (DuplicateNode).
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called for an existing node.
	ErrDuplicateNode = errors.New("core: node already exists")
)

// DefaultWeight is the weight of an edge added without WithWeight.
const DefaultWeight = 1.0

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight (default DefaultWeight).
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// edgeKey addresses the weight table by (source, destination).
type edgeKey struct {
	from, to string
}

// Graph is the in-memory directed weighted graph.
//
// nodes keeps node IDs in insertion order; each value is the node's
// out-list ([]string) in edge insertion order, duplicates suppressed.
// weights holds one entry per edge.
type Graph struct {
	mu sync.RWMutex

	nodes   *linkedhashmap.Map   // node ID → []string (ordered out-list)
	weights map[edgeKey]float64 // (from,to) → weight
	edges   int                 // total edge count
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:   linkedhashmap.New(),
		weights: make(map[edgeKey]float64),
	}
}

// outList returns the live out-list of id. Caller holds mu.
func (g *Graph) outList(id string) ([]string, bool) {
	v, ok := g.nodes.Get(id)
	if !ok {
		return nil, false
	}

	return v.([]string), true
}
