// Package metrics records the algorithmic cost of heap operations.
//
// A Tracker is handed to a heap as its observer and collects counts while the
// heap runs:
//
//	tracker := metrics.NewTracker("MinHeap")
//	h := minheap.FromSlice(values, tracker)
//
//	tracker.StartTimer()
//	for !h.IsEmpty() {
//	    h.ExtractMin()
//	}
//	tracker.StopTimer()
//
//	snap := tracker.Snapshot()
//
// Noop satisfies the same contract and records nothing. PrometheusRecorder
// publishes finished snapshots as Prometheus gauges so benchmark runs can be
// scraped or written to a textfile collector.
package metrics
