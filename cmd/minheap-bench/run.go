package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/andrewortman/minheap/internal/bench"
	"github.com/andrewortman/minheap/internal/logfields"
	"github.com/andrewortman/minheap/metrics"
)

// RunCmd implements the 'run' command.
type RunCmd struct {
	Size            []int    `short:"n" sep:"," help:"Input sizes (default 100000)"`
	Inputs          []string `short:"i" sep:"," help:"Input kinds: random, sorted, reverse, nearly-sorted (default random)"`
	Strategies      []string `short:"s" sep:"," help:"Build strategies: bulk, incremental, container-heap (default bulk)"`
	Seed            *uint64  `help:"Seed for generated inputs (default 1234)"`
	Repeat          *int     `help:"Runs per size, input and strategy (default 1)"`
	Verify          bool     `help:"Fail if a drained heap is not the sorted input"`
	CSV             string   `name:"csv" help:"Results log to append to (default results.csv)"`
	NoCSV           bool     `name:"no-csv" help:"Do not write the results log"`
	MetricsTextfile string   `name:"metrics-textfile" help:"Also write Prometheus metrics to this file"`
	Format          string   `short:"f" default:"table" enum:"table,csv,summary,none" help:"Console output format (table, csv, summary, none)"`

	stdout io.Writer `kong:"-"`
}

// Run executes the run command.
func (r *RunCmd) Run(g *Global, root *CLI) error {
	suite, err := r.suite(root.Config)
	if err != nil {
		return err
	}

	var sinks []bench.Sink
	if suite.Output.CSV != "" {
		csvLog, err := bench.OpenCSVLog(suite.Output.CSV)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := csvLog.Close(); cerr != nil {
				g.Logger.Error("Failed to close results log", logfields.Path(suite.Output.CSV), logfields.Error(cerr))
			}
		}()
		sinks = append(sinks, csvLog)
	}

	var recorder *metrics.PrometheusRecorder
	if suite.Output.MetricsTextfile != "" {
		recorder = metrics.NewPrometheusRecorder(nil)
		sinks = append(sinks, bench.PrometheusSink(recorder))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Logger.Info("Starting benchmark",
		"sizes", suite.Sizes,
		"inputs", suite.Inputs,
		"strategies", suite.Strategies,
		logfields.Seed(suite.Seed),
		"repeat", suite.Repeat)

	results, runErr := bench.NewRunner(g.Logger, sinks...).Run(ctx, suite)

	// partial results are still reported when a run fails or is interrupted
	var result *multierror.Error
	if runErr != nil {
		result = multierror.Append(result, runErr)
	}
	if err := r.render(results); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to render results: %w", err))
	}
	if recorder != nil {
		if err := recorder.WriteTextfile(suite.Output.MetricsTextfile); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to write metrics textfile: %w", err))
		} else {
			g.Logger.Info("Wrote metrics textfile", logfields.Path(suite.Output.MetricsTextfile))
		}
	}

	g.Logger.Info("Benchmark finished", "runs", len(results), logfields.Path(suite.Output.CSV))
	return result.ErrorOrNil()
}

// suite resolves the effective suite: defaults, then the suite file, then
// explicitly set flags.
func (r *RunCmd) suite(configPath string) (bench.Suite, error) {
	suite := bench.DefaultSuite()
	if configPath != "" {
		loaded, err := bench.LoadSuite(configPath)
		if err != nil {
			return bench.Suite{}, err
		}
		suite = loaded
	}

	if len(r.Size) > 0 {
		suite.Sizes = r.Size
	}
	if len(r.Inputs) > 0 {
		suite.Inputs = suite.Inputs[:0:0]
		for _, s := range r.Inputs {
			kind, err := bench.ParseInputKind(s)
			if err != nil {
				return bench.Suite{}, err
			}
			suite.Inputs = append(suite.Inputs, kind)
		}
	}
	if len(r.Strategies) > 0 {
		suite.Strategies = suite.Strategies[:0:0]
		for _, s := range r.Strategies {
			st, err := bench.ParseStrategy(s)
			if err != nil {
				return bench.Suite{}, err
			}
			suite.Strategies = append(suite.Strategies, st)
		}
	}
	if r.Seed != nil {
		suite.Seed = *r.Seed
	}
	if r.Repeat != nil {
		suite.Repeat = *r.Repeat
	}
	if r.Verify {
		suite.Verify = true
	}
	if r.CSV != "" {
		suite.Output.CSV = r.CSV
	}
	if r.NoCSV {
		suite.Output.CSV = ""
	}
	if r.MetricsTextfile != "" {
		suite.Output.MetricsTextfile = r.MetricsTextfile
	}

	if err := suite.Validate(); err != nil {
		return bench.Suite{}, err
	}
	return suite, nil
}

func (r *RunCmd) render(results []bench.Result) error {
	out := r.stdout
	if out == nil {
		out = os.Stdout
	}
	renderer := bench.NewRenderer(out)

	switch r.Format {
	case "csv":
		return renderer.RenderCSV(results)
	case "summary":
		return renderer.RenderSummary(results)
	case "none":
		return nil
	default:
		renderer.RenderTable(results)
		return nil
	}
}
