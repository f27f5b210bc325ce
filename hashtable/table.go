package hashtable

import (
	"fmt"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotUsed
	slotDeleted
)

// probeSlot is one linear-probing cell.
type probeSlot[V any] struct {
	state slotState
	entry Entry[V]
}

// Table is a fixed-capacity string-keyed hash table.
//
// Table is not safe for concurrent use.
type Table[V any] struct {
	capacity int
	strategy Strategy
	opts     Options
	size     int

	buckets []*singlylinkedlist.List // Chaining: *Entry[V] per element
	slots   []probeSlot[V]           // LinearProbing
}

// New returns an empty table.
//
// Errors:
//   - ErrInvalidCapacity if capacity is outside the configured bounds.
func New[V any](capacity int, strategy Strategy, opts ...Option) (*Table[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.checkCapacity(capacity); err != nil {
		return nil, err
	}
	t := &Table[V]{capacity: capacity, strategy: strategy, opts: cfg}
	t.reset()

	return t, nil
}

func (o Options) checkCapacity(capacity int) error {
	if capacity < 1 || capacity < o.MinCapacity || capacity > o.MaxCapacity {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCapacity, capacity, o.MinCapacity, o.MaxCapacity)
	}

	return nil
}

func (t *Table[V]) reset() {
	t.size = 0
	t.buckets, t.slots = nil, nil
	if t.strategy == Chaining {
		t.buckets = make([]*singlylinkedlist.List, t.capacity)
		for i := range t.buckets {
			t.buckets[i] = singlylinkedlist.New()
		}
		return
	}
	t.slots = make([]probeSlot[V], t.capacity)
}

// Capacity returns the number of slots.
func (t *Table[V]) Capacity() int { return t.capacity }

// Strategy returns the collision policy.
func (t *Table[V]) Strategy() Strategy { return t.strategy }

// Tombstones reports whether linear-probing deletes leave tombstones.
func (t *Table[V]) Tombstones() bool { return t.opts.Tombstones }

// Len returns the number of stored keys.
func (t *Table[V]) Len() int { return t.size }

// Clear empties every slot, keeping capacity and strategy.
func (t *Table[V]) Clear() { t.reset() }

// findInBucket returns the bucket position of key and its entry, or -1.
func findInBucket[V any](b *singlylinkedlist.List, key string) (int, *Entry[V]) {
	i, v := b.Find(func(_ int, v interface{}) bool {
		return v.(*Entry[V]).Key == key
	})
	if i < 0 {
		return -1, nil
	}

	return i, v.(*Entry[V])
}

// Insert stores value under key, replacing the value of an existing key.
//
// Chaining appends to the home bucket. LinearProbing scans from the home
// slot, wrapping, for at most Capacity slots; the first empty slot or the
// slot holding key wins.
//
// Errors:
//   - ErrTableFull (LinearProbing only), table unchanged.
func (t *Table[V]) Insert(key string, value V) (Placement, error) {
	home := Hash(key, t.capacity)
	if t.strategy == Chaining {
		b := t.buckets[home]
		if _, e := findInBucket[V](b, key); e != nil {
			e.Value = value
			return Placement{Index: home, Updated: true}, nil
		}
		b.Add(&Entry[V]{Key: key, Value: value})
		t.size++
		return Placement{Index: home}, nil
	}

	free := -1 // first tombstone met, reused when key is absent
	for i, idx := 0, home; i < t.capacity; i, idx = i+1, (idx+1)%t.capacity {
		s := &t.slots[idx]
		switch s.state {
		case slotUsed:
			if s.entry.Key == key {
				s.entry.Value = value
				return Placement{Index: idx, Updated: true}, nil
			}
			continue
		case slotDeleted:
			if free < 0 {
				free = idx
			}
			continue
		}
		// empty slot ends the probe run
		if free < 0 {
			free = idx
		}
		break
	}
	if free < 0 {
		return Placement{}, fmt.Errorf("%w: key %q", ErrTableFull, key)
	}
	t.slots[free] = probeSlot[V]{state: slotUsed, entry: Entry[V]{Key: key, Value: value}}
	t.size++

	return Placement{Index: free}, nil
}

// Search returns the value stored under key and the slot index holding it.
//
// LinearProbing stops at the first empty slot or after Capacity slots.
func (t *Table[V]) Search(key string) (value V, index int, found bool) {
	home := Hash(key, t.capacity)
	if t.strategy == Chaining {
		if _, e := findInBucket[V](t.buckets[home], key); e != nil {
			return e.Value, home, true
		}
		return value, -1, false
	}
	if idx := t.probe(key, home); idx >= 0 {
		return t.slots[idx].entry.Value, idx, true
	}

	return value, -1, false
}

// Delete removes key and returns the slot index it occupied.
//
// LinearProbing marks the slot empty, or deleted when tombstoning is on.
func (t *Table[V]) Delete(key string) (int, bool) {
	home := Hash(key, t.capacity)
	if t.strategy == Chaining {
		b := t.buckets[home]
		i, _ := findInBucket[V](b, key)
		if i < 0 {
			return -1, false
		}
		b.Remove(i)
		t.size--
		return home, true
	}
	idx := t.probe(key, home)
	if idx < 0 {
		return -1, false
	}
	if t.opts.Tombstones {
		t.slots[idx] = probeSlot[V]{state: slotDeleted}
	} else {
		t.slots[idx] = probeSlot[V]{}
	}
	t.size--

	return idx, true
}

// probe returns the linear-probing index of key or -1.
func (t *Table[V]) probe(key string, home int) int {
	for i, idx := 0, home; i < t.capacity; i, idx = i+1, (idx+1)%t.capacity {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return -1
		case slotUsed:
			if s.entry.Key == key {
				return idx
			}
		}
	}

	return -1
}
