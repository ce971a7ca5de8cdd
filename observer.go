package minheap

// Observer receives one call per comparison, swap and element access performed
// by a MinHeap. Implementations are not required to be safe for concurrent use.
type Observer interface {
	IncComparisons()
	IncSwaps()
	IncArrayAccesses()
}

// noopObserver is installed when a heap is constructed with a nil Observer.
type noopObserver struct{}

func (noopObserver) IncComparisons()   {}
func (noopObserver) IncSwaps()         {}
func (noopObserver) IncArrayAccesses() {}
