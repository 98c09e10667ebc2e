package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"drip/internal/config"
	"drip/internal/market"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	contribution := strconv.FormatFloat(cfg.Defaults.Contribution, 'f', -1, 64)
	cadence := cfg.Defaults.Cadence
	benchmark := cfg.Defaults.Benchmark
	themeName := cfg.Appearance.Theme
	historyOn := cfg.History.Enabled

	cadenceOpts := make([]huh.Option[string], len(market.Cadences))
	for i, c := range market.Cadences {
		cadenceOpts[i] = huh.NewOption(fmt.Sprintf("%s (%d deposits/yr)", c.Label, c.PeriodsPerYear), c.Name)
	}

	benchOpts := make([]huh.Option[string], 0, len(cfg.BenchmarkSet()))
	for _, b := range cfg.BenchmarkSet() {
		benchOpts = append(benchOpts, huh.NewOption(
			fmt.Sprintf("%s · %s (%.1f%%)", b.Symbol, b.Name, b.AnnualReturnPct), b.Symbol))
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to drip").
				Description("Set your default projection inputs."),

			huh.NewInput().
				Title("Contribution per deposit").
				Placeholder("200").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("enter a dollar amount, like 200")
					}
					if v < 0 {
						return errors.New("contribution cannot be negative")
					}
					return nil
				}).
				Value(&contribution),

			huh.NewSelect[string]().
				Title("Contribution cadence").
				Options(cadenceOpts...).
				Value(&cadence),

			huh.NewSelect[string]().
				Title("Benchmark").
				Options(benchOpts...).
				Value(&benchmark),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),

			huh.NewConfirm().
				Title("Save projections to history?").
				Value(&historyOn),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(contribution), 64); err == nil && v >= 0 {
		cfg.Defaults.Contribution = v
	}
	cfg.Defaults.Cadence = cadence
	cfg.Defaults.Benchmark = benchmark
	cfg.Appearance.Theme = themeName
	cfg.History.Enabled = historyOn

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `drip setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
