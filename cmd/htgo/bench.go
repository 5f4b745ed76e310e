package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htgo/internal/demo"
	"github.com/vango-dev/htgo/pkg/node"
)

func benchCmd(c *cli) *cobra.Command {
	var (
		rows       int
		iterations int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure render throughput",
		Long: `Render a large generated table repeatedly in both render modes and
report timings.

Examples:
  htgo bench
  htgo bench --rows 10000 --iterations 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rows") {
				c.cfg.Bench.Rows = rows
			}
			if cmd.Flags().Changed("iterations") {
				c.cfg.Bench.Iterations = iterations
			}
			if cmd.Flags().Changed("seed") {
				c.cfg.Bench.Seed = seed
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			results, err := runBench(cmd.Context(), c.cfg.Bench.Rows, c.cfg.Bench.Iterations, c.cfg.Bench.Seed)
			if err != nil {
				return err
			}
			printBench(c.stdout, c.cfg.Bench.Rows, results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "Table rows (default from config)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "Renders per mode (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed of the generated data")

	return cmd
}

type benchResult struct {
	Mode       string
	Iterations int
	Chunks     int
	Bytes      int64
	Min        time.Duration
	Mean       time.Duration
	Max        time.Duration
}

func runBench(ctx context.Context, rows, iterations int, seed int64) ([]benchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	table := demo.Table(demo.FakeRows(rows, seed))

	modes := []struct {
		name   string
		chunks func() iter.Seq2[string, error]
	}{
		{"sync", func() iter.Seq2[string, error] { return node.IterChunks(table, node.Values{}) }},
		{"async", func() iter.Seq2[string, error] { return node.AIterChunks(ctx, table, node.Values{}) }},
	}

	results := make([]benchResult, 0, len(modes))
	for _, mode := range modes {
		res := benchResult{Mode: mode.name, Iterations: iterations}
		var total time.Duration
		for i := 0; i < iterations; i++ {
			chunks, size := 0, int64(0)
			start := time.Now()
			for chunk, err := range mode.chunks() {
				if err != nil {
					return nil, fmt.Errorf("bench %s: %w", mode.name, err)
				}
				chunks++
				size += int64(len(chunk))
			}
			d := time.Since(start)

			total += d
			if i == 0 || d < res.Min {
				res.Min = d
			}
			if d > res.Max {
				res.Max = d
			}
			res.Chunks, res.Bytes = chunks, size
		}
		if iterations > 0 {
			res.Mean = total / time.Duration(iterations)
		}
		results = append(results, res)
	}
	return results, nil
}

func printBench(w io.Writer, rows int, results []benchResult) {
	fmt.Fprintf(w, "table with %d rows\n\n", rows)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tRUNS\tCHUNKS\tBYTES\tMIN\tMEAN\tMAX\tMB/s")
	for _, r := range results {
		throughput := 0.0
		if r.Mean > 0 {
			throughput = float64(r.Bytes) / r.Mean.Seconds() / 1e6
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t%.1f\n",
			r.Mode, r.Iterations, r.Chunks, r.Bytes,
			r.Min.Round(time.Microsecond), r.Mean.Round(time.Microsecond), r.Max.Round(time.Microsecond),
			throughput)
	}
	tw.Flush()
}
