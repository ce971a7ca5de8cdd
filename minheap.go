package minheap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by Peek and ExtractMin when the heap holds no elements.
var ErrEmptyHeap = errors.New("minheap: heap is empty")

// MinHeap is an array-backed binary min-heap that reports every comparison,
// swap and element access to an Observer.
//
// data[0:size] holds the heap; the rest of data is spare capacity. A MinHeap is
// not safe for concurrent use.
type MinHeap[K cmp.Ordered] struct {
	data []K
	size int
	obs  Observer
}

// New constructs an empty heap with room for capacity elements (at least 1).
// If obs is nil, nothing is recorded.
func New[K cmp.Ordered](capacity int, obs Observer) *MinHeap[K] {
	return &MinHeap[K]{
		data: make([]K, max(1, capacity)),
		obs:  observerOrNoop(obs),
	}
}

// FromSlice builds a heap from a copy of values in linear time by sifting down
// every internal node, starting at the last one and walking back to the root.
// values is not modified.
func FromSlice[K cmp.Ordered](values []K, obs Observer) *MinHeap[K] {
	h := &MinHeap[K]{
		data: make([]K, max(1, len(values))),
		size: len(values),
		obs:  observerOrNoop(obs),
	}
	copy(h.data, values)
	h.build()
	return h
}

func observerOrNoop(obs Observer) Observer {
	if obs == nil {
		return noopObserver{}
	}
	return obs
}

// Insert adds v to the heap, doubling the backing storage first if it is full.
func (h *MinHeap[K]) Insert(v K) {
	h.ensureCapacity()
	h.data[h.size] = v
	h.obs.IncArrayAccesses()
	h.size++
	h.heapifyUp(h.size - 1)
}

// ExtractMin removes and returns the smallest element.
//
// Moving the last element into the root is always recorded as a swap, even when
// the heap held a single element and the move is onto itself.
func (h *MinHeap[K]) ExtractMin() (K, error) {
	if h.IsEmpty() {
		var zero K
		return zero, ErrEmptyHeap
	}
	root := h.data[0]
	h.data[0] = h.data[h.size-1]
	h.obs.IncArrayAccesses()
	h.obs.IncSwaps()
	h.size--
	h.heapifyDown(0)
	return root, nil
}

// Peek returns the smallest element without removing it.
func (h *MinHeap[K]) Peek() (K, error) {
	if h.IsEmpty() {
		var zero K
		return zero, ErrEmptyHeap
	}
	h.obs.IncArrayAccesses()
	return h.data[0], nil
}

// IsEmpty reports whether the heap holds no elements.
func (h *MinHeap[K]) IsEmpty() bool { return h.size == 0 }

// Len returns the number of elements in the heap.
func (h *MinHeap[K]) Len() int { return h.size }

// Cap returns the size of the backing storage.
func (h *MinHeap[K]) Cap() int { return len(h.data) }

// Valid reports whether every element is no smaller than its parent.
// It reads the storage directly and records nothing.
func (h *MinHeap[K]) Valid() bool {
	for i := 1; i < h.size; i++ {
		if h.data[i] < h.data[parent(i)] {
			return false
		}
	}
	return true
}

func (h *MinHeap[K]) build() {
	if h.size == 0 {
		return
	}
	for i := parent(h.size - 1); i >= 0; i-- {
		h.heapifyDown(i)
	}
}

func (h *MinHeap[K]) heapifyUp(i int) {
	for i > 0 {
		p := parent(i)
		h.obs.IncComparisons()
		if h.data[i] >= h.data[p] {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// heapifyDown sinks the element at i. Ties between the children go to the left one.
func (h *MinHeap[K]) heapifyDown(i int) {
	for {
		left, right := leftChild(i), rightChild(i)
		smallest := i

		if left < h.size {
			h.obs.IncComparisons()
			if h.data[left] < h.data[smallest] {
				smallest = left
			}
		}
		if right < h.size {
			h.obs.IncComparisons()
			if h.data[right] < h.data[smallest] {
				smallest = right
			}
		}

		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[K]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.obs.IncArrayAccesses()
	h.obs.IncSwaps()
}

func (h *MinHeap[K]) ensureCapacity() {
	if h.size < len(h.data) {
		return
	}
	grown := make([]K, 2*len(h.data))
	copy(grown, h.data)
	h.data = grown
}

func parent(i int) int     { return (i - 1) / 2 }
func leftChild(i int) int  { return 2*i + 1 }
func rightChild(i int) int { return 2*i + 2 }
