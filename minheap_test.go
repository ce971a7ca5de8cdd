package minheap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewortman/minheap/metrics"
)

var _ Observer = (*metrics.Tracker)(nil)
var _ Observer = metrics.Noop{}

// drain extracts every element and returns them in extraction order.
func drain[K int | float64](t *testing.T, h *MinHeap[K]) []K {
	t.Helper()
	out := make([]K, 0, h.Len())
	for !h.IsEmpty() {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		require.True(t, h.Valid(), "heap order broken after extracting %v", v)
		out = append(out, v)
	}
	return out
}

func TestMinHeap_InsertAndPeek(t *testing.T) {
	h := New[int](10, metrics.NewTracker("MinHeapTest"))

	h.Insert(5)
	h.Insert(3)
	h.Insert(8)

	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMinHeap_ExtractMinOrder(t *testing.T) {
	h := New[int](10, nil)
	for _, v := range []int{4, 2, 6, 1} {
		h.Insert(v)
	}

	assert.Equal(t, []int{1, 2, 4, 6}, drain(t, h))
	assert.True(t, h.IsEmpty())
}

func TestMinHeap_EmptyHeapErrors(t *testing.T) {
	h := New[int](5, nil)
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())

	v, err := h.Peek()
	assert.ErrorIs(t, err, ErrEmptyHeap)
	assert.Zero(t, v)

	v, err = h.ExtractMin()
	assert.ErrorIs(t, err, ErrEmptyHeap)
	assert.Zero(t, v)

	t.Run("after draining", func(t *testing.T) {
		h.Insert(1)
		_, err := h.ExtractMin()
		require.NoError(t, err)

		_, err = h.ExtractMin()
		assert.ErrorIs(t, err, ErrEmptyHeap)
		_, err = h.Peek()
		assert.ErrorIs(t, err, ErrEmptyHeap)
	})

	t.Run("errors record nothing", func(t *testing.T) {
		tr := metrics.NewTracker("empty")
		h := New[int](1, tr)
		_, _ = h.Peek()
		_, _ = h.ExtractMin()
		assert.Equal(t, metrics.Snapshot{}, tr.Snapshot())
	})
}

func TestMinHeap_SingleElement(t *testing.T) {
	h := New[int](5, nil)
	h.Insert(42)

	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, h.IsEmpty())
}

func TestMinHeap_Duplicates(t *testing.T) {
	h := New[int](10, nil)
	h.Insert(7)
	h.Insert(7)
	h.Insert(7)

	assert.Equal(t, []int{7, 7, 7}, drain(t, h))
	assert.True(t, h.IsEmpty())
}

func TestMinHeap_Growth(t *testing.T) {
	h := New[int](1, nil)
	require.Equal(t, 1, h.Cap())

	for i := 1000; i >= 1; i-- {
		h.Insert(i)
		require.True(t, h.Valid())
	}
	assert.Equal(t, 1000, h.Len())
	assert.Equal(t, 1024, h.Cap())

	for i := 1; i <= 1000; i++ {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	assert.True(t, h.IsEmpty())
	// storage never shrinks
	assert.Equal(t, 1024, h.Cap())
}

func TestMinHeap_CapacityClamp(t *testing.T) {
	for _, capacity := range []int{-5, 0, 1} {
		h := New[int](capacity, nil)
		assert.Equal(t, 1, h.Cap(), "capacity %d", capacity)
	}

	h := New[int](1, nil)
	h.Insert(1)
	h.Insert(2)
	assert.Equal(t, 2, h.Cap())
	h.Insert(3)
	assert.Equal(t, 4, h.Cap())
}

func TestMinHeap_IdempotentPeek(t *testing.T) {
	h := FromSlice([]int{9, 4, 7, 1, 8}, nil)

	for range 5 {
		v, err := h.Peek()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, 5, h.Len())
	}
}

func TestMinHeap_FromSlice(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		h := FromSlice([]int{}, nil)
		assert.True(t, h.IsEmpty())
		assert.Equal(t, 1, h.Cap())

		_, err := h.Peek()
		assert.ErrorIs(t, err, ErrEmptyHeap)

		h.Insert(3)
		v, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("nil input", func(t *testing.T) {
		h := FromSlice[int](nil, nil)
		assert.True(t, h.IsEmpty())
	})

	t.Run("input is copied", func(t *testing.T) {
		in := []int{5, 4, 3, 2, 1}
		h := FromSlice(in, nil)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, in)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, drain(t, h))
		assert.Equal(t, []int{5, 4, 3, 2, 1}, in)
	})

	t.Run("heap order after build", func(t *testing.T) {
		for _, in := range [][]int{
			{1},
			{2, 1},
			{3, 1, 2},
			{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			{1, 2, 3, 4, 5, 6, 7, 8},
			{5, 5, 1, 5, 1, 5},
		} {
			h := FromSlice(in, nil)
			assert.True(t, h.Valid(), "input %v", in)
			assert.Equal(t, len(in), h.Len())
		}
	})

	t.Run("left child wins ties", func(t *testing.T) {
		h := FromSlice([]int{5, 2, 2}, nil)
		assert.Equal(t, []int{2, 5, 2}, h.data[:h.size])
	})

	t.Run("floats", func(t *testing.T) {
		h := FromSlice([]float64{2.5, -1, 0.25, 3}, nil)
		assert.Equal(t, []float64{-1, 0.25, 2.5, 3}, drain(t, h))
	})
}

func TestMinHeap_BulkBuildEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for _, n := range []int{0, 1, 2, 17, 100, 1000} {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.IntN(500)
		}

		bulk := FromSlice(in, nil)
		incremental := New[int](1, nil)
		for _, v := range in {
			incremental.Insert(v)
		}

		want := slices.Clone(in)
		slices.Sort(want)

		gotBulk := drain(t, bulk)
		gotIncremental := drain(t, incremental)
		assert.Equal(t, gotIncremental, gotBulk, "n=%d", n)
		if n > 0 {
			assert.Equal(t, want, gotBulk, "n=%d", n)
		}
	}
}

func TestMinHeap_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	h := New[int](4, nil)
	var model []int

	for step := range 5000 {
		if len(model) == 0 || rng.IntN(3) > 0 {
			v := rng.IntN(100) - 50
			h.Insert(v)
			model = append(model, v)
		} else {
			v, err := h.ExtractMin()
			require.NoError(t, err)
			idx := slices.Index(model, slices.Min(model))
			require.Equal(t, model[idx], v, "step %d", step)
			model = slices.Delete(model, idx, idx+1)
		}
		require.True(t, h.Valid(), "step %d", step)
		require.Equal(t, len(model), h.Len())
	}

	slices.Sort(model)
	got := drain(t, h)
	if len(model) == 0 {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, model, got)
	}
}

func TestMinHeap_Metrics(t *testing.T) {
	t.Run("insert peek extract", func(t *testing.T) {
		tr := metrics.NewTracker("counts")
		h := New[int](10, tr)

		h.Insert(5) // write
		h.Insert(3) // write, compare, swap
		h.Insert(8) // write, compare
		assert.Equal(t, metrics.Snapshot{Comparisons: 2, Swaps: 1, ArrayAccesses: 4}, tr.Snapshot())

		_, err := h.Peek()
		require.NoError(t, err)
		assert.EqualValues(t, 5, tr.ArrayAccesses())

		// root replacement, one child compared, one swap down
		_, err = h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, metrics.Snapshot{Comparisons: 3, Swaps: 3, ArrayAccesses: 7}, tr.Snapshot())
	})

	t.Run("single element extract counts the self swap", func(t *testing.T) {
		tr := metrics.NewTracker("self-swap")
		h := New[int](1, tr)
		h.Insert(42)

		_, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, metrics.Snapshot{Comparisons: 0, Swaps: 1, ArrayAccesses: 2}, tr.Snapshot())
	})

	t.Run("construction by capacity records nothing", func(t *testing.T) {
		tr := metrics.NewTracker("construct")
		_ = New[int](16, tr)
		assert.Equal(t, metrics.Snapshot{}, tr.Snapshot())
	})

	t.Run("bulk build", func(t *testing.T) {
		tr := metrics.NewTracker("bulk")
		h := FromSlice([]int{3, 1, 2}, tr)
		assert.Equal(t, metrics.Snapshot{Comparisons: 2, Swaps: 1, ArrayAccesses: 1}, tr.Snapshot())
		assert.False(t, h.IsEmpty())
	})

	t.Run("bulk build is linear", func(t *testing.T) {
		const n = 1024
		in := make([]int, n)
		for i := range in {
			in[i] = n - i
		}

		bulk := metrics.NewTracker("bulk")
		FromSlice(in, bulk)
		assert.LessOrEqual(t, bulk.Swaps(), int64(n))
		assert.LessOrEqual(t, bulk.Comparisons(), int64(3*n))

		incremental := metrics.NewTracker("incremental")
		h := New[int](1, incremental)
		for _, v := range in {
			h.Insert(v)
		}
		assert.Greater(t, incremental.Comparisons(), bulk.Comparisons())
		assert.Greater(t, incremental.Swaps(), bulk.Swaps())
	})

	t.Run("monotonic until reset", func(t *testing.T) {
		tr := metrics.NewTracker("monotonic")
		h := New[int](2, tr)
		rng := rand.New(rand.NewPCG(3, 4))

		var prev metrics.Snapshot
		for range 500 {
			if h.IsEmpty() || rng.IntN(2) == 0 {
				h.Insert(rng.IntN(1000))
			} else {
				_, err := h.ExtractMin()
				require.NoError(t, err)
			}
			cur := tr.Snapshot()
			require.GreaterOrEqual(t, cur.Comparisons, prev.Comparisons)
			require.GreaterOrEqual(t, cur.Swaps, prev.Swaps)
			require.GreaterOrEqual(t, cur.ArrayAccesses, prev.ArrayAccesses)
			prev = cur
		}

		tr.Reset()
		assert.Equal(t, metrics.Snapshot{}, tr.Snapshot())
	})

	t.Run("shared tracker across heaps", func(t *testing.T) {
		tr := metrics.NewTracker("shared")
		a := New[int](1, tr)
		b := New[int](1, tr)
		a.Insert(1)
		b.Insert(2)
		assert.EqualValues(t, 2, tr.ArrayAccesses())
	})
}
