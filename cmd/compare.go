package cmd

import (
	"fmt"

	"drip/internal/cli"
	"drip/internal/engine"
	"drip/internal/market"

	"github.com/spf13/cobra"
)

var flagCompareCadences bool

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare outcomes across benchmarks or cadences",
	Long:  "Run the same contribution plan against every benchmark, or against every\ndeposit cadence with --cadences, and compare where each lands.",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&flagCompareCadences, "cadences", false, "Compare deposit cadences instead of benchmarks")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	s, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	if flagCompareCadences {
		return compareCadences(s)
	}
	return compareBenchmarks(s)
}

func compareBenchmarks(s scenario) error {
	benchmarks := s.cfg.BenchmarkSet()

	rows := make([][]string, 0, len(benchmarks))
	maxTotal := 0.0
	totals := make([]float64, len(benchmarks))
	for i, b := range benchmarks {
		in := s.input
		in.AnnualReturnPct = b.AnnualReturnPct
		result, err := engine.Project(in)
		if err != nil {
			return err
		}
		totals[i] = result.Total
		if result.Total > maxTotal {
			maxTotal = result.Total
		}
		rows = append(rows, []string{
			b.Symbol,
			cli.FormatPercent(b.AnnualReturnPct),
			cli.FormatCurrency(result.Total),
			cli.FormatCurrency(result.Earnings),
			cli.FormatMultiple(result.Total, result.Contributed),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Benchmarks · %s %s for %s",
			cli.FormatCurrency(s.input.Contribution), s.cadence.Label,
			cli.FormatYears(s.input.Years)),
		Headers: []string{"Symbol", "Return", "Total", "Earnings", "Multiple"},
		Rows:    rows,
	}))
	fmt.Println()

	for i, b := range benchmarks {
		label := fmt.Sprintf("%-5s", b.Symbol)
		fmt.Println(cli.RenderBarRow(label, totals[i], maxTotal, 40))
	}
	fmt.Println()

	return nil
}

func compareCadences(s scenario) error {
	rows := make([][]string, 0, len(market.Cadences))
	for _, cad := range market.Cadences {
		in := s.input
		in.Frequency = cad.PeriodsPerYear
		result, err := engine.Project(in)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			cad.Label,
			fmt.Sprintf("%d", cad.PeriodsPerYear),
			cli.FormatCurrency(in.Contribution * float64(in.Frequency)),
			cli.FormatCurrency(result.Contributed),
			cli.FormatCurrency(result.Total),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Cadences · %s per deposit @ %s for %s",
			cli.FormatCurrency(s.input.Contribution),
			cli.FormatPercent(s.input.AnnualReturnPct),
			cli.FormatYears(s.input.Years)),
		Headers: []string{"Cadence", "Per Year", "$/Year", "Contributed", "Total"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
