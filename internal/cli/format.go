// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a dollar amount for display. Values of $1M and above
// are abbreviated to millions with two decimals; everything else renders as
// whole dollars with comma grouping.
// e.g., 1153421.77 -> "$1.15M", 156000 -> "$156,000"
func FormatCurrency(v float64) string {
	if math.IsNaN(v) {
		return "$--"
	}
	if math.IsInf(v, 1) {
		return "$∞"
	}
	if math.IsInf(v, -1) {
		return "-$∞"
	}
	if v < 0 {
		return "-" + FormatCurrency(-v)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("$%.2fM", v/1_000_000)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an annual return percentage.
// e.g., 10.5 -> "10.5%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMultiple formats the ratio of final value to total contributions.
// A zero contributed amount has no meaningful multiple; render a dash
// rather than dividing by zero.
func FormatMultiple(total, contributed float64) string {
	if contributed == 0 {
		return "--"
	}
	return fmt.Sprintf("%.2fx", total/contributed)
}

// FormatDelta formats a currency delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatCurrency(delta)
	}
	return "-" + FormatCurrency(-delta)
}

// FormatYears formats a horizon for labels. e.g., 30 -> "30y"
func FormatYears(years int) string {
	return fmt.Sprintf("%dy", years)
}
