package bench

import (
	"container/heap"

	"github.com/andrewortman/minheap"
)

// baselineHeap is a min-heap of ints driven by container/heap. It reports to
// the same observer contract as minheap.MinHeap so the two can be compared.
type baselineHeap struct {
	values []int
	obs    minheap.Observer
}

func (h *baselineHeap) Len() int { return len(h.values) }

func (h *baselineHeap) Less(i, j int) bool {
	h.obs.IncComparisons()
	return h.values[i] < h.values[j]
}

func (h *baselineHeap) Swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
	h.obs.IncArrayAccesses()
	h.obs.IncSwaps()
}

func (h *baselineHeap) Push(x interface{}) {
	h.values = append(h.values, x.(int))
	h.obs.IncArrayAccesses()
}

func (h *baselineHeap) Pop() interface{} {
	old := h.values
	n := len(old)
	v := old[n-1]
	h.values = old[0 : n-1]
	return v
}

// baselineBuildAndDrain heapifies a copy of in with heap.Init and pops every element.
func baselineBuildAndDrain(in []int, obs minheap.Observer) []int {
	h := &baselineHeap{values: append([]int(nil), in...), obs: obs}
	heap.Init(h)

	out := make([]int, 0, len(in))
	for h.Len() > 0 {
		out = append(out, heap.Pop(h).(int))
	}
	return out
}
