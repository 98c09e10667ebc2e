package cli

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1200, "$1,200"},
		{156000, "$156,000"},
		{999999, "$999,999"},
		{1_000_000, "$1.00M"},
		{1_153_421.77, "$1.15M"},
		{12_345_678, "$12.35M"},
		{-42000, "-$42,000"},
		{-2_500_000, "-$2.50M"},
		{1234.49, "$1,234"},
		{1234.5, "$1,235"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	if got := FormatCurrency(math.Inf(1)); got != "$∞" {
		t.Errorf("FormatCurrency(+Inf) = %q", got)
	}
	if got := FormatCurrency(math.Inf(-1)); got != "-$∞" {
		t.Errorf("FormatCurrency(-Inf) = %q", got)
	}
	if got := FormatCurrency(math.NaN()); got != "$--" {
		t.Errorf("FormatCurrency(NaN) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-98765, "-98,765"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMultiple(t *testing.T) {
	if got := FormatMultiple(300000, 156000); got != "1.92x" {
		t.Errorf("FormatMultiple = %q, want 1.92x", got)
	}
	// No contributions means no meaningful multiple, never a division.
	if got := FormatMultiple(0, 0); got != "--" {
		t.Errorf("FormatMultiple(0, 0) = %q, want --", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(10.5); got != "10.5%" {
		t.Errorf("FormatPercent(10.5) = %q", got)
	}
	if got := FormatPercent(-3); got != "-3.0%" {
		t.Errorf("FormatPercent(-3) = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(1500, 1000); got != "+$500" {
		t.Errorf("FormatDelta = %q, want +$500", got)
	}
	if got := FormatDelta(1000, 1500); got != "-$500" {
		t.Errorf("FormatDelta = %q, want -$500", got)
	}
}
