// Package step defines Step, Kind and the Sequence contract.
package step

import (
	"errors"
	"iter"
)

// ErrAborted is reported by Sequence.Err when the consumer stopped pulling
// before the Completed step was delivered.
var ErrAborted = errors.New("step: sequence aborted before completion")

// Kind classifies a Step.
type Kind uint8

const (
	// Visiting marks a node being processed (BFS/DFS visit, Dijkstra pop).
	Visiting Kind = iota + 1
	// EdgeDiscovered marks an edge leading to a newly discovered node.
	EdgeDiscovered
	// EdgeRelaxed marks a successful Dijkstra relaxation.
	EdgeRelaxed
	// EdgeAdded marks an edge joining the Prim spanning tree.
	EdgeAdded
	// Completed is always the last step of a sequence that ran to the end.
	Completed
)

// String returns the wire-style name of the kind.
func (k Kind) String() string {
	switch k {
	case Visiting:
		return "visiting"
	case EdgeDiscovered:
		return "edge-discovered"
	case EdgeRelaxed:
		return "edge-relaxed"
	case EdgeAdded:
		return "edge-added"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Step is one observable state transition.
//
// Only the fields relevant to Kind are set:
//
//	Visiting:       Node (+ Distance for Dijkstra, Frontier for BFS/DFS)
//	EdgeDiscovered: From, To, Weight (+ Frontier)
//	EdgeRelaxed:    From, To, Weight, Distance (new best distance of To)
//	EdgeAdded:      From, To, Weight
//	Completed:      nothing
type Step struct {
	Kind     Kind
	Node     string
	From     string
	To       string
	Weight   float64
	Distance float64

	// Frontier is a copy of the pending queue (BFS) or stack, top first (DFS).
	Frontier []string
}

// Sequence is a lazy, single-use stream of steps.
type Sequence interface {
	// Steps returns the step iterator. Only the first call yields anything.
	Steps() iter.Seq[Step]

	// Err reports why the sequence ended early, or nil.
	Err() error
}
