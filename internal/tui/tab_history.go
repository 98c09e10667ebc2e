package tui

import (
	"fmt"
	"strings"

	"drip/internal/cli"
	"drip/internal/market"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderHistoryTab lists saved scenarios, newest first. Enter restores the
// selected scenario into the projection inputs.
func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if a.history == nil {
		return "\n  " + dimStyle.Render("Scenario history is disabled in config.")
	}
	if a.histErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("history error: %s", a.histErr))
	}
	if len(a.runs) == 0 {
		return "\n  " + dimStyle.Render("No saved scenarios yet. Press [s] on the Projection tab to save one.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	header := fmt.Sprintf(" %-16s %10s %-12s %5s %7s %-5s %13s",
		"Saved", "Amount", "Cadence", "Years", "Return", "Bench", "Total")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(len(header)+1, innerW))))
	b.WriteString("\n")

	visible := contentH - 7
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.histCursor >= visible {
		start = a.histCursor - visible + 1
	}
	end := start + visible
	if end > len(a.runs) {
		end = len(a.runs)
	}

	for i := start; i < end; i++ {
		r := a.runs[i]

		cadLabel := fmt.Sprintf("%d/yr", r.Frequency)
		if cad, ok := market.CadenceByPeriods(r.Frequency); ok {
			cadLabel = cad.Label
		}

		line := fmt.Sprintf(" %-16s %10s %-12s %5d %7s %-5s %13s",
			r.SavedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatCurrency(r.Contribution),
			cadLabel,
			r.Years,
			cli.FormatPercent(r.ReturnPct),
			r.Benchmark,
			cli.FormatCurrency(r.Total),
		)

		if i == a.histCursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if end < len(a.runs) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" … %d more", len(a.runs)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[j/k] browse  [Enter] restore scenario"))

	title := fmt.Sprintf("History · %d saved", len(a.runs))
	return components.ContentCard(title, b.String(), cw)
}
