// Package cmd implements the drip CLI commands.
package cmd

import (
	"fmt"

	"drip/internal/cli"
	"drip/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [defaults]")
	fmt.Printf("    Contribution: %s\n", cli.FormatCurrency(cfg.Defaults.Contribution))
	fmt.Printf("    Cadence:      %s\n", cfg.Defaults.Cadence)
	fmt.Printf("    Years:        %d\n", cfg.Defaults.Years)
	fmt.Printf("    Benchmark:    %s\n", cfg.Defaults.Benchmark)
	if cfg.Defaults.ReturnPct != nil {
		fmt.Printf("    Return:       %s (overrides benchmark)\n", cli.FormatPercent(*cfg.Defaults.ReturnPct))
	}
	fmt.Println()

	fmt.Println("  [appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [history]")
	fmt.Printf("    Enabled: %v\n", cfg.History.Enabled)
	fmt.Printf("    Path:    %s\n", config.HistoryPath())
	fmt.Println()

	if len(cfg.Benchmarks) > 0 {
		fmt.Println("  [benchmarks]")
		for sym, ov := range cfg.Benchmarks {
			detail := "override"
			if ov.AnnualReturnPct != nil {
				detail = cli.FormatPercent(*ov.AnnualReturnPct)
			}
			fmt.Printf("    %s: %s\n", sym, detail)
		}
		fmt.Println()
	}

	fmt.Println("  Run `drip setup` to reconfigure.")
	return nil
}
