package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/andrewortman/minheap/internal/logfields"
	"github.com/andrewortman/minheap/metrics"
)

// ErrUnsortedOutput is returned by a verifying run whose drained output is not
// the sorted input.
var ErrUnsortedOutput = errors.New("bench: drained output is not sorted")

// Result is the outcome of one build-and-drain run.
type Result struct {
	RunID     string
	Algorithm string
	Strategy  Strategy
	Input     InputKind
	Size      int
	Seed      uint64
	Repeat    int // zero-based repetition index

	metrics.Snapshot
}

// Labels returns the labels the result is exported under.
func (r Result) Labels() metrics.RunLabels {
	return metrics.RunLabels{
		Algorithm: r.Algorithm,
		Strategy:  string(r.Strategy),
		Input:     string(r.Input),
		Size:      r.Size,
	}
}

// Sink receives every result as soon as its run completes.
type Sink interface {
	Record(Result) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Result) error

func (f SinkFunc) Record(r Result) error { return f(r) }

// PrometheusSink publishes results through a PrometheusRecorder.
func PrometheusSink(pr *metrics.PrometheusRecorder) Sink {
	return SinkFunc(func(r Result) error {
		pr.Observe(r.Labels(), r.Snapshot)
		return nil
	})
}

// Runner executes suites sequentially. It keeps one Tracker per algorithm and
// resets it before every run.
type Runner struct {
	logger   *slog.Logger
	sinks    []Sink
	trackers map[string]*metrics.Tracker

	newID func() string // injectable for tests; default uuid.NewString
}

// NewRunner constructs a Runner. If logger is nil, slog.Default is used.
func NewRunner(logger *slog.Logger, sinks ...Sink) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:   logger,
		sinks:    sinks,
		trackers: make(map[string]*metrics.Tracker),
		newID:    uuid.NewString,
	}
}

// Run executes every size, input, strategy and repetition of the suite in that
// nesting order and returns the results. The context is checked between runs;
// on cancellation the results gathered so far are returned with the context error.
func (r *Runner) Run(ctx context.Context, suite Suite) ([]Result, error) {
	if err := suite.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(suite.Sizes)*len(suite.Inputs)*len(suite.Strategies)*suite.Repeat)
	for _, size := range suite.Sizes {
		for _, input := range suite.Inputs {
			values, err := Generate(input, size, suite.Seed)
			if err != nil {
				return results, err
			}
			for _, strategy := range suite.Strategies {
				for rep := range suite.Repeat {
					if err := ctx.Err(); err != nil {
						return results, err
					}

					res, err := r.runOne(values, strategy, input, suite.Seed, rep, suite.Verify)
					if err != nil {
						return results, err
					}
					results = append(results, res)

					if err := r.record(res); err != nil {
						return results, err
					}
				}
			}
		}
	}
	return results, nil
}

func (r *Runner) runOne(values []int, strategy Strategy, input InputKind, seed uint64, rep int, verify bool) (Result, error) {
	tracker := r.tracker(strategy.Algorithm())
	tracker.Reset()

	tracker.StartTimer()
	out, err := strategy.buildAndDrain(values, tracker)
	tracker.StopTimer()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:     r.newID(),
		Algorithm: tracker.Name(),
		Strategy:  strategy,
		Input:     input,
		Size:      len(values),
		Seed:      seed,
		Repeat:    rep,
		Snapshot:  tracker.Snapshot(),
	}

	r.logger.Debug("Benchmark run complete",
		logfields.RunID(res.RunID),
		logfields.Algorithm(res.Algorithm),
		logfields.Strategy(string(strategy)),
		logfields.Input(string(input)),
		logfields.Size(res.Size),
		logfields.Comparisons(res.Comparisons),
		logfields.Swaps(res.Swaps),
		logfields.ArrayAccesses(res.ArrayAccesses),
		logfields.DurationMS(millis(res.Elapsed)))

	if verify {
		if err := verifyDrain(values, out); err != nil {
			return res, fmt.Errorf("%w: strategy %s, input %s, size %d", err, strategy, input, len(values))
		}
	}
	return res, nil
}

func (r *Runner) tracker(algorithm string) *metrics.Tracker {
	t, ok := r.trackers[algorithm]
	if !ok {
		t = metrics.NewTracker(algorithm)
		r.trackers[algorithm] = t
	}
	return t
}

// record hands res to every sink, even after one of them fails.
func (r *Runner) record(res Result) error {
	var result *multierror.Error
	for _, s := range r.sinks {
		if err := s.Record(res); err != nil {
			r.logger.Error("Failed to record result", logfields.RunID(res.RunID), logfields.Error(err))
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// verifyDrain checks that out is exactly the sorted multiset of in.
func verifyDrain(in, out []int) error {
	if len(in) != len(out) {
		return fmt.Errorf("%w: drained %d of %d elements", ErrUnsortedOutput, len(out), len(in))
	}
	want := slices.Clone(in)
	slices.Sort(want)
	for i := range want {
		if want[i] != out[i] {
			return fmt.Errorf("%w: position %d holds %d, want %d", ErrUnsortedOutput, i, out[i], want[i])
		}
	}
	return nil
}
