package bench

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Renderer prints results for humans.
type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderTable prints one row per result with thousands separators and SI
// durations.
func (r *Renderer) RenderTable(results []Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "MinHeap",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	tw.AppendHeader(table.Row{"Algorithm", "Strategy", "Input", "Size", "Comparisons", "Swaps", "Accesses", "Time"})
	for _, res := range results {
		tw.AppendRow(table.Row{
			res.Algorithm,
			string(res.Strategy),
			string(res.Input),
			humanize.Comma(int64(res.Size)),
			humanize.Comma(res.Comparisons),
			humanize.Comma(res.Swaps),
			humanize.Comma(res.ArrayAccesses),
			humanize.SIWithDigits(res.Elapsed.Seconds(), 2, "s"),
		})
	}
	tw.Render()
}

// RenderCSV prints results in the results log format, header included.
func (r *Renderer) RenderCSV(results []Result) error {
	return WriteCSV(r.output, results)
}

// RenderSummary prints one plain line per result.
func (r *Renderer) RenderSummary(results []Result) error {
	for _, res := range results {
		_, err := fmt.Fprintf(r.output, "%s (%s, %s): n=%d, time(ns)=%d, time(ms)=%d, comparisons=%d, swaps=%d, array_accesses=%d\n",
			res.Algorithm, res.Strategy, res.Input, res.Size,
			res.Elapsed.Nanoseconds(), res.Elapsed.Milliseconds(),
			res.Comparisons, res.Swaps, res.ArrayAccesses)
		if err != nil {
			return err
		}
	}
	return nil
}
