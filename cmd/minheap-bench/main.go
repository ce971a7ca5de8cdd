package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

// Global is bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"YAML suite file; explicitly set flags override its values" type:"existingfile"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run      RunCmd      `cmd:"" default:"withargs" help:"Build and drain heaps over generated inputs and record the costs"`
	Generate GenerateCmd `cmd:"" help:"Print a generated benchmark input, one value per line"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

func main() {
	var cli CLI
	global := &Global{Logger: slog.Default()}

	ctx := kong.Parse(&cli,
		kong.Name("minheap-bench"),
		kong.Description("Benchmark an instrumented binary min-heap."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Bind(global, &cli),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
