package components

import (
	"fmt"

	"drip/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ValueSlider renders a labeled horizontal slider showing where value sits
// within [min, max]. valueText is the formatted reading shown to the right.
// Focused sliders draw in the accent color.
func ValueSlider(label, valueText string, value, min, max float64, labelW, barWidth int, focused bool) string {
	t := theme.Active

	pct := 0.0
	if max > min {
		pct = (value - min) / (max - min)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	fill := string(t.TextMuted)
	if focused {
		fill = string(t.Accent)
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	}
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(pct) +
		" " + valueStyle.Render(valueText)
}

// CyclePicker renders a left/right picker row for enumerated choices.
// e.g., "Cadence   ‹ biweekly ›"
func CyclePicker(label, choice string, labelW int, focused bool) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	arrowStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	choiceStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
		arrowStyle = lipgloss.NewStyle().Foreground(t.Accent)
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + arrowStyle.Render("‹") +
		" " + choiceStyle.Render(choice) +
		" " + arrowStyle.Render("›")
}
