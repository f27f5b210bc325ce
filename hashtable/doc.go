// Package hashtable implements a fixed-capacity, string-keyed hash table
// with a choice of collision policy: Chaining or LinearProbing.
//
// The home slot of a key is Hash(key, Capacity): base 31, reduced modulo
// the capacity after every UTF-16 code unit. Index assignment is part of
// the observable behaviour, so the hash is fixed.
//
// Capacity and strategy never change in place. Rebuild drains the pairs in
// slot order (bucket order within a chaining slot) into a fresh table
// through Insert, leaving the original untouched on failure.
//
// By default a linear-probing Delete turns the slot back into a plain empty
// slot. A later Search for a key that had probed past that slot stops early
// and misses it, and inserting that key again stores a second copy. Rebuild
// then drains both copies and keeps the value from the later slot.
// WithTombstones switches to tombstones instead.
package hashtable
