package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrewortman/minheap"
)

// Strategy names how a benchmark run builds its heap before draining it.
type Strategy string

const (
	// StrategyBulk builds with minheap.FromSlice.
	StrategyBulk Strategy = "bulk"
	// StrategyIncremental starts from capacity 1 and inserts every value.
	StrategyIncremental Strategy = "incremental"
	// StrategyContainerHeap runs the container/heap baseline.
	StrategyContainerHeap Strategy = "container-heap"
)

// AllStrategies lists every supported strategy in reporting order.
var AllStrategies = []Strategy{StrategyBulk, StrategyIncremental, StrategyContainerHeap}

// ErrUnknownStrategy is returned for strategies outside AllStrategies.
var ErrUnknownStrategy = errors.New("bench: unknown strategy")

// ParseStrategy maps a name such as "bulk" to its Strategy.
func ParseStrategy(s string) (Strategy, error) {
	strategy := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range AllStrategies {
		if st == strategy {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Algorithm is the name reported for runs of this strategy.
func (s Strategy) Algorithm() string {
	if s == StrategyContainerHeap {
		return "container/heap"
	}
	return "MinHeap"
}

// buildAndDrain builds a heap from in using the strategy, extracts every
// element and returns them in extraction order.
func (s Strategy) buildAndDrain(in []int, obs minheap.Observer) ([]int, error) {
	switch s {
	case StrategyBulk:
		return drainMinHeap(minheap.FromSlice(in, obs))
	case StrategyIncremental:
		h := minheap.New[int](1, obs)
		for _, v := range in {
			h.Insert(v)
		}
		return drainMinHeap(h)
	case StrategyContainerHeap:
		return baselineBuildAndDrain(in, obs), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func drainMinHeap(h *minheap.MinHeap[int]) ([]int, error) {
	out := make([]int, 0, h.Len())
	for !h.IsEmpty() {
		v, err := h.ExtractMin()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
