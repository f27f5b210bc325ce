// Package builder generates deterministic core.Graph fixtures (paths,
// cycles, stars, complete graphs, grids, wheels, random sparse graphs) for
// demos and tests.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node ID from its zero-based index. It must be pure.
type IDFn func(idx int) string

// DecimalIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx: 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+decimal index: "N0", "N1", …
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
