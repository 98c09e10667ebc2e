package tui

import (
	"fmt"
	"strings"
	"time"

	"drip/internal/cli"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderProjectionTab draws the main dashboard: headline metric cards,
// the input panel, and the growth chart.
func (a App) renderProjectionTab(cw, contentH int) string {
	t := theme.Active

	if a.projErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("projection error: %s", a.projErr))
	}

	displayTotal := a.result.Total
	if a.animating {
		displayTotal = a.anim.value(time.Now())
	}

	cad := a.cadence
	perYear := a.contribution * float64(cad.PeriodsPerYear)

	metrics := []components.Metric{
		{
			Label:   "Projected Total",
			Value:   cli.FormatCurrency(displayTotal),
			Caption: cli.FormatYears(a.years) + " @ " + cli.FormatPercent(a.returnPct),
		},
		{
			Label:   "Contributed",
			Value:   cli.FormatCurrency(a.result.Contributed),
			Caption: cli.FormatCurrency(perYear) + "/yr",
		},
		{
			Label:   "Earnings",
			Value:   cli.FormatCurrency(a.result.Earnings),
			Caption: "growth",
		},
		{
			Label:   "Multiple",
			Value:   cli.FormatMultiple(a.result.Total, a.result.Contributed),
			Caption: "of contributions",
		},
	}
	cards := components.MetricCardRow(metrics, cw, -1)

	// Input panel
	innerW := components.CardInnerWidth(cw)
	labelW := 13
	barW := innerW - labelW - 14
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	bench := a.benchmark()
	var panel strings.Builder
	panel.WriteString(components.ValueSlider(
		"Contribution", cli.FormatCurrency(a.contribution),
		a.contribution, 0, maxContribution,
		labelW, barW, a.focusField == fieldContribution))
	panel.WriteString("\n")
	panel.WriteString(components.CyclePicker(
		"Cadence", fmt.Sprintf("%s (%d/yr)", cad.Label, cad.PeriodsPerYear),
		labelW, a.focusField == fieldCadence))
	panel.WriteString("\n")
	panel.WriteString(components.ValueSlider(
		"Years", cli.FormatYears(a.years),
		float64(a.years), 1, maxYears,
		labelW, barW, a.focusField == fieldYears))
	panel.WriteString("\n")
	panel.WriteString(components.CyclePicker(
		"Benchmark", fmt.Sprintf("%s · %s", bench.Symbol, cli.FormatPercent(bench.AnnualReturnPct)),
		labelW, a.focusField == fieldBenchmark))

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	panel.WriteString("\n\n")
	panel.WriteString(hintStyle.Render("[j/k] field  [h/l] adjust  [H/L] big step"))

	inputCard := components.ContentCard("Inputs", panel.String(), cw)

	// Growth chart fills the remaining height
	usedH := lipgloss.Height(cards) + lipgloss.Height(inputCard) + 3
	chartH := contentH - usedH
	if chartH < 5 {
		chartH = 5
	}
	if chartH > 16 {
		chartH = 16
	}
	chart := components.GrowthChart(a.result.YearEnd, 1, innerW, chartH)
	chartCard := components.ContentCard("Balance by Year", chart, cw)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")
	b.WriteString(inputCard)
	b.WriteString("\n")
	b.WriteString(chartCard)

	return b.String()
}
