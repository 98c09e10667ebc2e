package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"drip/internal/config"
	"drip/internal/market"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	contribution string
	cadence      string
	benchmark    string
	theme        string
}

// newSetupForm builds the first-run setup form.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.contribution = strconv.FormatFloat(cfg.Defaults.Contribution, 'f', -1, 64)
	vals.cadence = cfg.Defaults.Cadence
	vals.benchmark = cfg.Defaults.Benchmark
	vals.theme = cfg.Appearance.Theme

	cadenceOpts := make([]huh.Option[string], len(market.Cadences))
	for i, c := range market.Cadences {
		cadenceOpts[i] = huh.NewOption(c.Label, c.Name)
	}

	benchmarks := cfg.BenchmarkSet()
	benchOpts := make([]huh.Option[string], len(benchmarks))
	for i, b := range benchmarks {
		benchOpts[i] = huh.NewOption(b.Symbol+" · "+b.Name, b.Symbol)
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to drip").
				Description("Set your default projection. Everything can be changed later\nin Settings or via `drip config`."),

			huh.NewInput().
				Title("Contribution per deposit").
				Placeholder("200").
				Validate(validateContribution).
				Value(&vals.contribution),

			huh.NewSelect[string]().
				Title("Contribution cadence").
				Options(cadenceOpts...).
				Value(&vals.cadence),

			huh.NewSelect[string]().
				Title("Benchmark").
				Options(benchOpts...).
				Value(&vals.benchmark),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

func validateContribution(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a dollar amount, like 200")
	}
	if v < 0 {
		return errors.New("contribution cannot be negative")
	}
	return nil
}

// applySetup persists the form answers and reloads the projection inputs.
func (a *App) applySetup() {
	cfg := loadConfigOrDefault()

	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.contribution), 64); err == nil && v >= 0 {
		cfg.Defaults.Contribution = v
	}
	if _, err := market.ParseCadence(a.setupVals.cadence); err == nil {
		cfg.Defaults.Cadence = a.setupVals.cadence
	}
	if _, ok := market.Lookup(cfg.BenchmarkSet(), a.setupVals.benchmark); ok {
		cfg.Defaults.Benchmark = a.setupVals.benchmark
	}
	for _, t := range theme.All {
		if t.Name == a.setupVals.theme {
			cfg.Appearance.Theme = t.Name
			theme.SetActive(t.Name)
		}
	}

	_ = config.Save(cfg)

	a.cfg = cfg
	a.benchmarks = cfg.BenchmarkSet()
	a.contribution = cfg.Defaults.Contribution
	if cad, err := market.ParseCadence(cfg.Defaults.Cadence); err == nil {
		a.cadence = cad
	}
	for i, b := range a.benchmarks {
		if b.Symbol == cfg.Defaults.Benchmark {
			a.benchIdx = i
		}
	}
	a.returnPct = a.benchmarks[a.benchIdx].AnnualReturnPct
	a.recompute(time.Now())
}
