package metrics

import "time"

// Tracker counts comparisons, swaps and element accesses and times one
// explicitly bracketed region. It satisfies minheap.Observer.
//
// A Tracker is not safe for concurrent use. It may be shared by several heaps
// in sequence and reset between runs.
type Tracker struct {
	name string

	comparisons   int64
	swaps         int64
	arrayAccesses int64

	start time.Time
	stop  time.Time

	now func() time.Time // injectable clock for tests; default time.Now
}

// Snapshot is a point-in-time copy of a Tracker's counts.
type Snapshot struct {
	Comparisons   int64
	Swaps         int64
	ArrayAccesses int64
	Elapsed       time.Duration
}

// NewTracker returns a zeroed Tracker labelled with the measured algorithm's name.
func NewTracker(name string) *Tracker {
	return &Tracker{name: name, now: time.Now}
}

func (t *Tracker) IncComparisons()   { t.comparisons++ }
func (t *Tracker) IncSwaps()         { t.swaps++ }
func (t *Tracker) IncArrayAccesses() { t.arrayAccesses++ }

// StartTimer records the start of the measured region.
func (t *Tracker) StartTimer() { t.start = t.now() }

// StopTimer records the end of the measured region. Callers must have called
// StartTimer first; the order is not checked.
func (t *Tracker) StopTimer() { t.stop = t.now() }

// Reset zeroes all counters and timestamps.
func (t *Tracker) Reset() {
	t.comparisons = 0
	t.swaps = 0
	t.arrayAccesses = 0
	t.start = time.Time{}
	t.stop = time.Time{}
}

func (t *Tracker) Name() string         { return t.name }
func (t *Tracker) Comparisons() int64   { return t.comparisons }
func (t *Tracker) Swaps() int64         { return t.swaps }
func (t *Tracker) ArrayAccesses() int64 { return t.arrayAccesses }
func (t *Tracker) Started() time.Time   { return t.start }
func (t *Tracker) Stopped() time.Time   { return t.stop }

// Elapsed returns stop minus start. It is negative if StopTimer ran before StartTimer.
func (t *Tracker) Elapsed() time.Duration { return t.stop.Sub(t.start) }

// Snapshot copies the current counts and elapsed duration.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Comparisons:   t.comparisons,
		Swaps:         t.swaps,
		ArrayAccesses: t.arrayAccesses,
		Elapsed:       t.Elapsed(),
	}
}

// Noop is an observer that records nothing.
type Noop struct{}

func (Noop) IncComparisons()   {}
func (Noop) IncSwaps()         {}
func (Noop) IncArrayAccesses() {}
