package console

import (
	"time"

	"github.com/katalvlaran/dsviz/binheap"
	"github.com/katalvlaran/dsviz/hashtable"
	"github.com/katalvlaran/dsviz/player"
)

// Config holds the initial setup of every structure the console owns.
type Config struct {
	HeapKind    binheap.Kind
	HeapBackend string

	TableCapacity   int
	TableStrategy   hashtable.Strategy
	TableTombstones bool

	// Interval paces graph algorithms; 0 runs them without delay.
	Interval time.Duration

	// GraphSeed drives random preset topologies and weights.
	GraphSeed int64
}

// DefaultConfig mirrors the initial state of the visualiser: a min-heap,
// an 11-slot chaining table and the default animation interval.
func DefaultConfig() Config {
	return Config{
		HeapKind:      binheap.Min,
		HeapBackend:   binheap.BackendReference,
		TableCapacity: hashtable.DefaultCapacity,
		TableStrategy: hashtable.Chaining,
		Interval:      player.DefaultInterval,
		GraphSeed:     1,
	}
}
