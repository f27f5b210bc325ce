package hashtable

import "fmt"

// Slots returns a detached copy of every slot in index order.
func (t *Table[V]) Slots() []Slot[V] {
	out := make([]Slot[V], t.capacity)
	for i := range out {
		out[i].Index = i
		if t.strategy == Chaining {
			for _, v := range t.buckets[i].Values() {
				out[i].Entries = append(out[i].Entries, *v.(*Entry[V]))
			}
			continue
		}
		switch t.slots[i].state {
		case slotUsed:
			out[i].Entries = []Entry[V]{t.slots[i].entry}
		case slotDeleted:
			out[i].Tombstone = true
		}
	}

	return out
}

// Entries returns every pair in slot order, then bucket order.
func (t *Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, t.size)
	for _, s := range t.Slots() {
		out = append(out, s.Entries...)
	}

	return out
}

// Rebuild returns a new table with the given capacity and strategy and the
// same options, filled by inserting Entries in order. t is not modified.
//
// Errors:
//   - ErrInvalidCapacity if capacity is out of bounds.
//   - ErrTableFull if the pairs do not fit a linear-probing table.
func (t *Table[V]) Rebuild(capacity int, strategy Strategy) (*Table[V], error) {
	if err := t.opts.checkCapacity(capacity); err != nil {
		return nil, err
	}
	out := &Table[V]{capacity: capacity, strategy: strategy, opts: t.opts}
	out.reset()
	for _, e := range t.Entries() {
		if _, err := out.Insert(e.Key, e.Value); err != nil {
			return nil, fmt.Errorf("hashtable: rebuild to %d/%s: %w", capacity, strategy, err)
		}
	}

	return out, nil
}
