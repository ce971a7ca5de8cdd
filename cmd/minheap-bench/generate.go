package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/andrewortman/minheap/internal/bench"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Input string `arg:"" enum:"random,sorted,reverse,nearly-sorted" help:"Input kind (random, sorted, reverse, nearly-sorted)"`
	Size  int    `short:"n" default:"10" help:"Number of values"`
	Seed  uint64 `default:"1234" help:"Seed for random and nearly-sorted inputs"`

	stdout io.Writer `kong:"-"`
}

// Run prints the generated values.
func (c *GenerateCmd) Run() error {
	kind, err := bench.ParseInputKind(c.Input)
	if err != nil {
		return err
	}
	values, err := bench.Generate(kind, c.Size, c.Seed)
	if err != nil {
		return err
	}

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	w := bufio.NewWriter(out)
	for _, v := range values {
		if _, err := w.WriteString(strconv.Itoa(v) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
