package binheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/binheap"
)

var backends = []string{binheap.BackendReference, binheap.BackendContainer}

func TestHeap_Layout(t *testing.T) {
	for _, b := range backends {
		t.Run(b, func(t *testing.T) {
			h := binheap.New[int](binheap.Min, binheap.WithBackend(b))
			for _, v := range []int{5, 3, 8, 1} {
				h.Insert(v)
			}
			assert.Equal(t, []int{1, 3, 8, 5}, h.Values())

			root, err := h.ExtractRoot()
			require.NoError(t, err)
			assert.Equal(t, 1, root)
			assert.Equal(t, []int{3, 5, 8}, h.Values())

			m := binheap.New[int](binheap.Max, binheap.WithBackend(b))
			for v := 1; v <= 5; v++ {
				m.Insert(v)
			}
			assert.Equal(t, []int{5, 4, 2, 1, 3}, m.Values())
		})
	}
}

func TestHeap_Empty(t *testing.T) {
	for _, b := range backends {
		h := binheap.New[string](binheap.Max, binheap.WithBackend(b))
		_, err := h.ExtractRoot()
		assert.ErrorIs(t, err, binheap.ErrEmpty, b)
		_, err = h.Peek()
		assert.ErrorIs(t, err, binheap.ErrEmpty, b)
		assert.Empty(t, h.Values(), b)

		h.Insert("x")
		h.Clear()
		assert.Zero(t, h.Len(), b)
		_, err = h.ExtractRoot()
		assert.ErrorIs(t, err, binheap.ErrEmpty, b)
	}
}

// TestHeap_BackendsAgree runs the same random operations on both backends
// and compares the array layout after every operation.
func TestHeap_BackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, kind := range []binheap.Kind{binheap.Min, binheap.Max} {
		ref := binheap.New[int](kind)
		ctr := binheap.New[int](kind, binheap.WithBackend(binheap.BackendContainer))
		for i := 0; i < 2000; i++ {
			if rng.Intn(3) == 0 {
				a, errA := ref.ExtractRoot()
				b, errB := ctr.ExtractRoot()
				require.Equal(t, errA, errB)
				require.Equal(t, a, b)
			} else {
				v := rng.Intn(10) // small range forces ties
				ref.Insert(v)
				ctr.Insert(v)
			}
			require.Equal(t, ref.Values(), ctr.Values(), "op %d kind %s", i, kind)
		}
	}
}

// TestHeap_HeapOrder checks the heap property and that extraction yields a
// sorted sequence.
func TestHeap_HeapOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, b := range backends {
		h := binheap.New[float64](binheap.Max, binheap.WithBackend(b))
		var want []float64
		for i := 0; i < 300; i++ {
			v := rng.Float64()
			want = append(want, v)
			h.Insert(v)
		}
		vals := h.Values()
		for i := 1; i < len(vals); i++ {
			require.GreaterOrEqual(t, vals[(i-1)/2], vals[i], "parent of %d", i)
		}

		sort.Sort(sort.Reverse(sort.Float64Slice(want)))
		got := make([]float64, 0, len(want))
		for h.Len() > 0 {
			v, err := h.ExtractRoot()
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, want, got, b)
	}
}

func TestHeap_Convert(t *testing.T) {
	h := binheap.New[int](binheap.Min, binheap.WithBackend(binheap.BackendContainer))
	for _, v := range []int{5, 3, 8, 1} {
		h.Insert(v)
	}

	m := h.Convert(binheap.Max)
	assert.Equal(t, binheap.Max, m.Kind())
	assert.Equal(t, binheap.BackendContainer, m.Backend())
	assert.Equal(t, []int{8, 5, 3, 1}, m.Values())
	assert.Equal(t, []int{1, 3, 8, 5}, h.Values(), "source heap is untouched")
}

func TestHeap_UnknownBackendFallsBack(t *testing.T) {
	h := binheap.New[int](binheap.Min, binheap.WithBackend("wasm"))
	assert.Equal(t, binheap.BackendReference, h.Backend())
	h.Insert(2)
	h.Insert(1)
	assert.Equal(t, []int{1, 2}, h.Values())
}

func TestParseKind(t *testing.T) {
	k, err := binheap.ParseKind(" MAX ")
	require.NoError(t, err)
	assert.Equal(t, binheap.Max, k)
	assert.Equal(t, "max", k.String())

	_, err = binheap.ParseKind("median")
	assert.ErrorIs(t, err, binheap.ErrUnknownKind)
}

func BenchmarkHeap_InsertExtract(b *testing.B) {
	for _, name := range backends {
		b.Run(name, func(b *testing.B) {
			h := binheap.New[int](binheap.Min, binheap.WithBackend(name))
			for i := 0; i < b.N; i++ {
				h.Insert(i * 7919 % 1000)
				if h.Len() > 64 {
					_, _ = h.ExtractRoot()
				}
			}
		})
	}
}

// TestHeap_RebuildFromValues checks that inserting a heap's layout into a
// fresh heap of the same kind reproduces the layout.
func TestHeap_RebuildFromValues(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	h := binheap.New[int](binheap.Max)
	for i := 0; i < 100; i++ {
		h.Insert(rng.Intn(50))
	}
	_, _ = h.ExtractRoot()

	assert.Equal(t, h.Values(), h.Convert(binheap.Max).Values())
}
