package tui

import (
	"fmt"
	"strings"

	"drip/internal/cli"
	"drip/internal/engine"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderBenchmarksTab lists the configured benchmark instruments with the
// outcome each one would produce for the current inputs.
func (a App) renderBenchmarksTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 44
	if nameW < 12 {
		nameW = 12
	}
	if nameW > 28 {
		nameW = 28
	}

	var b strings.Builder
	header := fmt.Sprintf(" %-2s %-6s %-*s %8s %14s", "", "Symbol", nameW, "Name", "Return", "Projected")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(len(header)+1, innerW))))
	b.WriteString("\n")

	freq := a.cadence.PeriodsPerYear
	for i, bench := range a.benchmarks {
		projected := "--"
		result, err := engine.Project(engine.Input{
			Contribution:    a.contribution,
			Frequency:       freq,
			Years:           a.years,
			AnnualReturnPct: bench.AnnualReturnPct,
		})
		if err == nil {
			projected = cli.FormatCurrency(result.Total)
		}

		marker := "  "
		if i == a.benchIdx {
			marker = "● "
		}

		line := fmt.Sprintf(" %-2s%-6s %-*s %8s %14s",
			marker,
			bench.Symbol,
			nameW, truncStr(bench.Name, nameW),
			cli.FormatPercent(bench.AnnualReturnPct),
			projected,
		)

		if i == a.benchCursor {
			b.WriteString(selectedStyle.Render(line))
		} else if i == a.benchIdx {
			b.WriteString(accentStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	// Detail line for the highlighted instrument
	if a.benchCursor < len(a.benchmarks) {
		desc := a.benchmarks[a.benchCursor].Description
		if desc != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(" " + truncStr(desc, innerW-2)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[j/k] browse  [Enter] use for projection"))

	title := fmt.Sprintf("Benchmarks · %s %s for %s",
		cli.FormatCurrency(a.contribution), a.cadence.Label, cli.FormatYears(a.years))
	return components.ContentCard(title, b.String(), cw)
}
