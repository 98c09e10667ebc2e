package components

import (
	"strings"
	"testing"

	"drip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
		{120, 1},
	}

	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestMetricCardRowHeightsMatch(t *testing.T) {
	theme.SetActive("flexoki-dark")

	metrics := []Metric{
		{Label: "Projected Total", Value: "$1.15M", Caption: "30y @ 10.5%"},
		{Label: "Contributed", Value: "$156,000"},
	}
	row := MetricCardRow(metrics, 60, 0)
	lines := strings.Split(row, "\n")

	// Card with a caption is the tallest; joined output matches it
	tallest := len(strings.Split(MetricCard("Projected Total", "$1.15M", "30y @ 10.5%", 30, true), "\n"))
	if len(lines) != tallest {
		t.Errorf("row height = %d, want %d", len(lines), tallest)
	}
}

func TestGrowthChartFallsBackToSparkline(t *testing.T) {
	theme.SetActive("flexoki-dark")

	balances := []float64{5000, 11000, 18000}
	tiny := GrowthChart(balances, 1, 10, 2)
	if strings.Contains(tiny, "\n") {
		t.Error("tiny chart should collapse to a single-line sparkline")
	}
	if tiny == "" {
		t.Error("sparkline fallback should not be empty")
	}
}

func TestGrowthChartHasAxisLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")

	balances := make([]float64, 10)
	for i := range balances {
		balances[i] = float64((i + 1) * 25000)
	}
	chart := GrowthChart(balances, 1, 60, 10)

	if !strings.Contains(chart, "$0") {
		t.Error("chart should anchor the y-axis at $0")
	}
	if !strings.Contains(chart, "k") {
		t.Errorf("chart should carry compact dollar ticks, got:\n%s", chart)
	}
	if !strings.Contains(chart, "█") {
		t.Error("chart should render full bar blocks")
	}
}

func TestDollarTick(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "$500"},
		{1000, "$1k"},
		{250000, "$250k"},
		{1_500_000, "$1.5M"},
		{2_000_000, "$2M"},
		{3_000_000_000, "$3B"},
	}

	for _, tt := range tests {
		if got := dollarTick(tt.in); got != tt.want {
			t.Errorf("dollarTick(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	for _, tab := range Tabs {
		active := TabVisualWidth(tab, true)
		inactive := TabVisualWidth(tab, false)
		if active != len(tab.Name) {
			t.Errorf("%s: active width = %d, want %d", tab.Name, active, len(tab.Name))
		}
		if inactive <= active {
			t.Errorf("%s: inactive width %d should exceed active %d (brackets)", tab.Name, inactive, active)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('p'); got != 0 {
		t.Errorf("TabIdxByKey('p') = %d, want 0", got)
	}
	if got := TabIdxByKey('x'); got != len(Tabs)-1 {
		t.Errorf("TabIdxByKey('x') = %d, want %d", got, len(Tabs)-1)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
