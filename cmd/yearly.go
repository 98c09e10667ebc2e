package cmd

import (
	"fmt"

	"drip/internal/cli"
	"drip/internal/engine"

	"github.com/spf13/cobra"
)

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Year-by-year balance breakdown",
	RunE:  runYearly,
}

func init() {
	rootCmd.AddCommand(yearlyCmd)
}

func runYearly(cmd *cobra.Command, _ []string) error {
	s, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	result, err := engine.Project(s.input)
	if err != nil {
		return err
	}

	perYear := s.input.Contribution * float64(s.input.Frequency)

	rows := make([][]string, 0, len(result.YearEnd)+2)
	prev := 0.0
	for i, balance := range result.YearEnd {
		contributed := perYear * float64(i+1)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cli.FormatCurrency(balance),
			cli.FormatCurrency(contributed),
			cli.FormatCurrency(balance - contributed),
			cli.FormatDelta(balance, prev),
		})
		prev = balance
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatCurrency(result.Total),
		cli.FormatCurrency(result.Contributed),
		cli.FormatCurrency(result.Earnings),
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Yearly · %s %s @ %s",
			cli.FormatCurrency(s.input.Contribution), s.cadence.Label,
			cli.FormatPercent(s.input.AnnualReturnPct)),
		Headers: []string{"Year", "Balance", "Contributed", "Earnings", "Growth"},
		Rows:    rows,
	}))
	fmt.Println()

	recordRun(s, result)
	return nil
}
