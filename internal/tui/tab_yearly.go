package tui

import (
	"fmt"
	"strings"

	"drip/internal/cli"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderYearlyTab draws the per-year balance table with contribution and
// growth columns, scrollable for long horizons.
func (a App) renderYearlyTab(cw, contentH int) string {
	t := theme.Active

	if a.projErr != nil || len(a.result.YearEnd) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n  " + dimStyle.Render("No projection to show.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	cad := a.cadence
	perYear := a.contribution * float64(cad.PeriodsPerYear)

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	header := fmt.Sprintf(" %-6s %14s %14s %14s %10s",
		"Year", "Balance", "Contributed", "Earnings", "Growth")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(len(header)+1, innerW))))
	b.WriteString("\n")

	// Visible window follows the cursor
	visible := contentH - 7
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.yearlyScroll >= visible {
		start = a.yearlyScroll - visible + 1
	}
	end := start + visible
	if end > len(a.result.YearEnd) {
		end = len(a.result.YearEnd)
	}

	prev := 0.0
	if start > 0 {
		prev = a.result.YearEnd[start-1]
	}
	for i := start; i < end; i++ {
		balance := a.result.YearEnd[i]
		contributed := perYear * float64(i+1)
		earnings := balance - contributed

		growth := balance - prev
		prev = balance

		line := fmt.Sprintf(" %-6d %14s %14s %14s %10s",
			i+1,
			cli.FormatCurrency(balance),
			cli.FormatCurrency(contributed),
			cli.FormatCurrency(earnings),
			cli.FormatDelta(growth, 0),
		)

		switch {
		case i == a.yearlyScroll:
			b.WriteString(selectedStyle.Render(line))
		case i == end-1 && end == len(a.result.YearEnd):
			b.WriteString(greenStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if end < len(a.result.YearEnd) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" … %d more years", len(a.result.YearEnd)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[j/k] scroll  [g/G] top/bottom"))

	title := fmt.Sprintf("Yearly Breakdown · %s %s",
		cli.FormatCurrency(a.contribution), cad.Label)
	return components.ContentCard(title, b.String(), cw)
}
