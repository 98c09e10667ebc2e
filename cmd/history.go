package cmd

import (
	"fmt"

	"drip/internal/cli"
	"drip/internal/config"
	"drip/internal/market"
	"drip/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved projection runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum runs to show (0 = all)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all saved runs")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer h.Close()

	if flagHistoryClear {
		count, err := h.Count()
		if err != nil {
			return err
		}
		if err := h.Clear(); err != nil {
			return err
		}
		fmt.Printf("  Cleared %d saved runs.\n", count)
		return nil
	}

	runs, err := h.ListRuns(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("  No saved runs yet. Projections are recorded automatically")
		fmt.Println("  (disable with --no-history or [history] enabled = false).")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		cadLabel := fmt.Sprintf("%d/yr", r.Frequency)
		if cad, ok := market.CadenceByPeriods(r.Frequency); ok {
			cadLabel = cad.Label
		}
		rows = append(rows, []string{
			r.SavedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatCurrency(r.Contribution),
			cadLabel,
			cli.FormatYears(r.Years),
			cli.FormatPercent(r.ReturnPct),
			r.Benchmark,
			cli.FormatCurrency(r.Total),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "History",
		Headers: []string{"Saved", "Amount", "Cadence", "Years", "Return", "Bench", "Total"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
