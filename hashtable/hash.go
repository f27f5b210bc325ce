package hashtable

import "unicode/utf16"

// Hash is the polynomial rolling hash h = (h*31 + c) mod capacity over the
// UTF-16 code units c of key, reduced at every step. capacity must be
// positive.
func Hash(key string, capacity int) int {
	h := 0
	for _, c := range utf16.Encode([]rune(key)) {
		h = (h*31 + int(c)) % capacity
	}

	return h
}
