package cmd

import (
	"fmt"

	"drip/internal/cli"

	"github.com/spf13/cobra"
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List available benchmark instruments",
	RunE:  runBenchmarks,
}

func init() {
	rootCmd.AddCommand(benchmarksCmd)
}

func runBenchmarks(cmd *cobra.Command, _ []string) error {
	s, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(s.cfg.BenchmarkSet()))
	for _, b := range s.cfg.BenchmarkSet() {
		marker := ""
		if b.Symbol == s.benchmark.Symbol {
			marker = "●"
		}
		rows = append(rows, []string{
			b.Symbol,
			b.Name,
			cli.FormatPercent(b.AnnualReturnPct),
			marker,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Benchmarks",
		Headers: []string{"Symbol", "Name", "Return", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Override or add instruments in the [benchmarks] config section.")
	fmt.Println()

	return nil
}
