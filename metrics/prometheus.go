package metrics

import (
	"strconv"
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"
)

// RunLabels identify one benchmark run in exported metrics.
type RunLabels struct {
	Algorithm string
	Strategy  string
	Input     string
	Size      int
}

func (l RunLabels) values() []string {
	return []string{l.Algorithm, l.Strategy, l.Input, strconv.Itoa(l.Size)}
}

var runLabelNames = []string{"algorithm", "strategy", "input", "size"}

// PrometheusRecorder publishes benchmark snapshots as Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	reg           *prom.Registry
	comparisons   *prom.GaugeVec
	swaps         *prom.GaugeVec
	arrayAccesses *prom.GaugeVec
	duration      *prom.GaugeVec
	runs          *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the benchmark metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.comparisons = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "minheap",
			Subsystem: "bench",
			Name:      "comparisons",
			Help:      "Key comparisons performed by the last run",
		}, runLabelNames)
		pr.swaps = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "minheap",
			Subsystem: "bench",
			Name:      "swaps",
			Help:      "Element swaps performed by the last run",
		}, runLabelNames)
		pr.arrayAccesses = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "minheap",
			Subsystem: "bench",
			Name:      "array_accesses",
			Help:      "Backing array writes recorded by the last run",
		}, runLabelNames)
		pr.duration = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "minheap",
			Subsystem: "bench",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of the last run",
		}, runLabelNames)
		pr.runs = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "minheap",
			Subsystem: "bench",
			Name:      "runs_total",
			Help:      "Completed benchmark runs",
		}, runLabelNames)
		reg.MustRegister(pr.comparisons, pr.swaps, pr.arrayAccesses, pr.duration, pr.runs)
	})
	return pr
}

// Observe publishes one finished run.
func (p *PrometheusRecorder) Observe(labels RunLabels, snap Snapshot) {
	if p == nil || p.runs == nil {
		return
	}
	lv := labels.values()
	p.comparisons.WithLabelValues(lv...).Set(float64(snap.Comparisons))
	p.swaps.WithLabelValues(lv...).Set(float64(snap.Swaps))
	p.arrayAccesses.WithLabelValues(lv...).Set(float64(snap.ArrayAccesses))
	p.duration.WithLabelValues(lv...).Set(snap.Elapsed.Seconds())
	p.runs.WithLabelValues(lv...).Inc()
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.reg
}

// WriteTextfile writes the registry to path in the text exposition format read
// by the node exporter's textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil {
		return nil
	}
	return prom.WriteToTextfile(path, p.reg)
}
