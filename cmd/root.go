package cmd

import (
	"fmt"
	"os"
	"strings"

	"drip/internal/cli"
	"drip/internal/config"
	"drip/internal/engine"
	"drip/internal/market"
	"drip/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagContribution float64
	flagCadence      string
	flagYears        int
	flagReturn       float64
	flagBenchmark    string
	flagNoHistory    bool
)

// Input clamping bounds. Values outside these are pulled to the nearest edge.
const (
	maxFlagContribution = 10_000_000
	maxFlagYears        = 100
)

var rootCmd = &cobra.Command{
	Use:   "drip",
	Short: "Recurring-contribution investment projector",
	Long:  "Project the growth of recurring investments: compound a periodic contribution\nagainst a benchmark return and see where the balance lands.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagContribution, "contribution", "c", 0, "Amount invested per deposit")
	rootCmd.PersistentFlags().StringVarP(&flagCadence, "cadence", "f", "", "Deposit cadence: weekly, biweekly, semimonthly, monthly, or deposits/year")
	rootCmd.PersistentFlags().IntVarP(&flagYears, "years", "y", 0, "Investment horizon in years")
	rootCmd.PersistentFlags().Float64VarP(&flagReturn, "return", "r", 0, "Annual return percent (overrides benchmark)")
	rootCmd.PersistentFlags().StringVarP(&flagBenchmark, "benchmark", "b", "", "Benchmark symbol for the assumed return")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip saving this run to history")
}

// scenario is a fully resolved set of projection inputs.
type scenario struct {
	input     engine.Input
	cadence   market.Cadence
	benchmark market.Benchmark
	cfg       config.Config
}

// resolveScenario merges config defaults with command-line flags and
// clamps inputs into supported ranges.
func resolveScenario(cmd *cobra.Command) (scenario, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: %s, using defaults\n", err)
		cfg = config.Default()
	}

	var s scenario
	s.cfg = cfg

	contribution := cfg.Defaults.Contribution
	if cmd.Flags().Changed("contribution") {
		contribution = flagContribution
	}
	if contribution < 0 {
		contribution = 0
	}
	if contribution > maxFlagContribution {
		contribution = maxFlagContribution
	}

	cadenceName := cfg.Defaults.Cadence
	if cmd.Flags().Changed("cadence") {
		cadenceName = flagCadence
	}
	cad, err := market.ParseCadence(cadenceName)
	if err != nil {
		return s, err
	}
	s.cadence = cad

	years := cfg.Defaults.Years
	if cmd.Flags().Changed("years") {
		years = flagYears
	}
	if years < 1 {
		years = 1
	}
	if years > maxFlagYears {
		years = maxFlagYears
	}

	benchmarks := cfg.BenchmarkSet()
	symbol := cfg.Defaults.Benchmark
	if symbol == "" {
		symbol = market.DefaultBenchmark
	}
	if cmd.Flags().Changed("benchmark") {
		symbol = strings.ToUpper(flagBenchmark)
	}
	bench, ok := market.Lookup(benchmarks, symbol)
	if !ok {
		return s, fmt.Errorf("unknown benchmark %q (see `drip benchmarks`)", symbol)
	}
	s.benchmark = bench

	returnPct := bench.AnnualReturnPct
	if cfg.Defaults.ReturnPct != nil {
		returnPct = *cfg.Defaults.ReturnPct
	}
	if cmd.Flags().Changed("return") {
		returnPct = flagReturn
	}

	s.input = engine.Input{
		Contribution:    contribution,
		Frequency:       cad.PeriodsPerYear,
		Years:           years,
		AnnualReturnPct: returnPct,
	}
	return s, nil
}

// recordRun saves a completed projection to history, best-effort.
func recordRun(s scenario, result engine.Result) {
	if flagNoHistory || !s.cfg.History.Enabled {
		return
	}

	h, err := store.Open(config.HistoryPath())
	if err != nil {
		return
	}
	defer h.Close()

	_, _ = h.SaveRun(store.Run{
		Contribution: s.input.Contribution,
		Frequency:    s.input.Frequency,
		Years:        s.input.Years,
		ReturnPct:    s.input.AnnualReturnPct,
		Benchmark:    s.benchmark.Symbol,
		Total:        result.Total,
		Contributed:  result.Contributed,
		Earnings:     result.Earnings,
	})
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	result, err := engine.Project(s.input)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("drip · " + cli.FormatCurrency(s.input.Contribution) + " " + s.cadence.Label))
	fmt.Println()

	perYear := s.input.Contribution * float64(s.input.Frequency)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Benchmark", fmt.Sprintf("%s (%s)", s.benchmark.Symbol, cli.FormatPercent(s.input.AnnualReturnPct))},
			{"Cadence", fmt.Sprintf("%s (%d deposits/yr)", s.cadence.Label, s.input.Frequency)},
			{"Horizon", cli.FormatYears(s.input.Years)},
			{"Per year", cli.FormatCurrency(perYear)},
			{"---"},
			{"Contributed", cli.FormatCurrency(result.Contributed)},
			{"Earnings", cli.FormatCurrency(result.Earnings)},
			{"Total", cli.FormatCurrency(result.Total)},
			{"Multiple", cli.FormatMultiple(result.Total, result.Contributed)},
		},
	}))
	fmt.Println()

	// Compact growth bars: at most 10 sampled years
	if len(result.YearEnd) > 0 {
		maxVal := result.YearEnd[len(result.YearEnd)-1]
		step := 1
		if len(result.YearEnd) > 10 {
			step = (len(result.YearEnd) + 9) / 10
		}
		for i := 0; i < len(result.YearEnd); i += step {
			label := fmt.Sprintf("%3dy %13s", i+1, cli.FormatCurrency(result.YearEnd[i]))
			fmt.Println(cli.RenderBarRow(label, result.YearEnd[i], maxVal, 36))
		}
		last := len(result.YearEnd) - 1
		if last%step != 0 {
			label := fmt.Sprintf("%3dy %13s", last+1, cli.FormatCurrency(result.YearEnd[last]))
			fmt.Println(cli.RenderBarRow(label, result.YearEnd[last], maxVal, 36))
		}
		fmt.Println()
	}

	recordRun(s, result)
	return nil
}
