package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"drip/internal/cli"
	"drip/internal/config"
	"drip/internal/market"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldContribution = iota
	settingsFieldCadence
	settingsFieldYears
	settingsFieldBenchmark
	settingsFieldTheme
	settingsFieldHistory
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldContribution:
		ti.Placeholder = "200"
		ti.SetValue(strconv.FormatFloat(cfg.Defaults.Contribution, 'f', -1, 64))
	case settingsFieldCadence:
		names := make([]string, len(market.Cadences))
		for i, c := range market.Cadences {
			names[i] = c.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Defaults.Cadence)
	case settingsFieldYears:
		ti.Placeholder = "30"
		ti.SetValue(strconv.Itoa(cfg.Defaults.Years))
	case settingsFieldBenchmark:
		ti.Placeholder = market.DefaultBenchmark
		ti.SetValue(cfg.Defaults.Benchmark)
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldHistory:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.History.Enabled))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldContribution:
		if c, err := strconv.ParseFloat(val, 64); err == nil && c >= 0 {
			cfg.Defaults.Contribution = c
		}
	case settingsFieldCadence:
		if _, err := market.ParseCadence(val); err == nil {
			cfg.Defaults.Cadence = val
		}
	case settingsFieldYears:
		if y, err := strconv.Atoi(val); err == nil && y >= 1 {
			cfg.Defaults.Years = y
		}
	case settingsFieldBenchmark:
		sym := strings.ToUpper(val)
		if _, ok := market.Lookup(a.benchmarks, sym); ok {
			cfg.Defaults.Benchmark = sym
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldHistory:
		cfg.History.Enabled = val == "true" || val == "1" || val == "yes"
	}

	a.settings.saveErr = config.Save(cfg)
	a.cfg = cfg
	a.benchmarks = cfg.BenchmarkSet()
	a.recompute(time.Now())
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Contribution", cli.FormatCurrency(cfg.Defaults.Contribution)},
		{"Cadence", cfg.Defaults.Cadence},
		{"Years", strconv.Itoa(cfg.Defaults.Years)},
		{"Benchmark", cfg.Defaults.Benchmark},
		{"Theme", cfg.Appearance.Theme},
		{"History", strconv.FormatBool(cfg.History.Enabled)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Info card
	histCount := "--"
	if a.history != nil {
		histCount = strconv.Itoa(len(a.runs))
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("History db:     ") + valueStyle.Render(config.HistoryPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Saved runs:     ") + valueStyle.Render(histCount) + "\n")
	infoBody.WriteString(labelStyle.Render("Benchmarks:     ") + valueStyle.Render(strconv.Itoa(len(a.benchmarks))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Defaults", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
