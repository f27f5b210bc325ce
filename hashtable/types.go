package hashtable

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrTableFull is returned by a linear-probing Insert that found no
	// free slot and no matching key after Capacity attempts.
	ErrTableFull = errors.New("hashtable: table is full")

	// ErrInvalidCapacity is returned when a capacity is outside the
	// configured bounds. Nothing is changed.
	ErrInvalidCapacity = errors.New("hashtable: invalid capacity")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("hashtable: unknown collision strategy")
)

// Capacity defaults.
const (
	DefaultCapacity    = 11
	DefaultMinCapacity = 5
	DefaultMaxCapacity = 31
)

// Strategy is the collision policy.
type Strategy uint8

const (
	// Chaining keeps a sequence of entries per slot.
	Chaining Strategy = iota
	// LinearProbing stores one entry per slot and scans forward on collision.
	LinearProbing
)

// String returns "chaining" or "linear-probing".
func (s Strategy) String() string {
	if s == LinearProbing {
		return "linear-probing"
	}

	return "chaining"
}

// ParseStrategy accepts "chaining", "linear-probing", "linear" or "probing".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chaining", "chain":
		return Chaining, nil
	case "linear-probing", "linear", "probing":
		return LinearProbing, nil
	default:
		return Chaining, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Entry is one key/value pair.
type Entry[V any] struct {
	Key   string
	Value V
}

// Placement tells where Insert put a key and whether it replaced the value
// of an existing entry.
type Placement struct {
	Index   int
	Updated bool
}

// Slot is a detached view of one table slot.
//
// Under Chaining, Entries is the bucket in order. Under LinearProbing it
// holds at most one entry, and Tombstone marks a deleted slot when
// tombstoning is enabled.
type Slot[V any] struct {
	Index     int
	Entries   []Entry[V]
	Tombstone bool
}

// Options configures a Table.
type Options struct {
	Tombstones  bool
	MinCapacity int
	MaxCapacity int
}

// Option configures Options.
type Option func(*Options)

// WithTombstones makes linear-probing Delete leave a tombstone that
// Search probes past and Insert reuses. Without it a deleted slot becomes
// plain empty, which can hide keys stored further along the same probe run.
func WithTombstones() Option {
	return func(o *Options) {
		o.Tombstones = true
	}
}

// WithCapacityBounds sets the accepted capacity range [lo, hi].
func WithCapacityBounds(lo, hi int) Option {
	return func(o *Options) {
		o.MinCapacity = lo
		o.MaxCapacity = hi
	}
}

// DefaultOptions returns bounds [DefaultMinCapacity, DefaultMaxCapacity]
// with tombstoning off.
func DefaultOptions() Options {
	return Options{MinCapacity: DefaultMinCapacity, MaxCapacity: DefaultMaxCapacity}
}
