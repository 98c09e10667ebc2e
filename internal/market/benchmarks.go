// Package market holds the benchmark instruments and contribution cadences
// offered by the input surface. Returns are illustrative long-run averages,
// not validated financial data; the engine never sees these tables, it only
// receives the scalar rate the caller picked.
package market

import "sort"

// Benchmark is an instrument with a historical average annual return.
type Benchmark struct {
	Symbol          string
	Name            string
	Description     string
	AnnualReturnPct float64
}

// DefaultBenchmarks lists the built-in instruments, nominal returns as of
// end 2024. Past performance does not guarantee future results.
var DefaultBenchmarks = []Benchmark{
	{
		Symbol:          "VOO",
		Name:            "S&P 500",
		Description:     "US large cap - 500 largest companies",
		AnnualReturnPct: 10.5,
	},
	{
		Symbol:          "QQQ",
		Name:            "Nasdaq-100",
		Description:     "US large cap growth - tech heavy",
		AnnualReturnPct: 13.1,
	},
	{
		Symbol:          "VTI",
		Name:            "Total US Market",
		Description:     "Broad US market - ~3700 companies",
		AnnualReturnPct: 10.2,
	},
	{
		Symbol:          "DIA",
		Name:            "Dow Jones",
		Description:     "US blue chip - 30 industrial leaders",
		AnnualReturnPct: 9.0,
	},
	{
		Symbol:          "VXUS",
		Name:            "Intl ex-US",
		Description:     "Developed + emerging markets outside the US",
		AnnualReturnPct: 5.3,
	},
	{
		Symbol:          "BND",
		Name:            "US Bond Aggregate",
		Description:     "Investment-grade US bonds",
		AnnualReturnPct: 3.2,
	},
}

// DefaultBenchmark is the symbol selected when nothing else is configured.
const DefaultBenchmark = "VOO"

// Override adjusts or adds a benchmark from configuration.
type Override struct {
	Name            string
	Description     string
	AnnualReturnPct *float64
}

// Merge applies configured overrides on top of the defaults. Overridden
// symbols keep their default position; new symbols are appended in symbol
// order so the result is stable across runs.
func Merge(overrides map[string]Override) []Benchmark {
	merged := make([]Benchmark, len(DefaultBenchmarks))
	copy(merged, DefaultBenchmarks)

	seen := make(map[string]int, len(merged))
	for i, b := range merged {
		seen[b.Symbol] = i
	}

	var added []string
	for sym := range overrides {
		if _, ok := seen[sym]; !ok {
			added = append(added, sym)
		}
	}
	sort.Strings(added)

	apply := func(b *Benchmark, ov Override) {
		if ov.Name != "" {
			b.Name = ov.Name
		}
		if ov.Description != "" {
			b.Description = ov.Description
		}
		if ov.AnnualReturnPct != nil {
			b.AnnualReturnPct = *ov.AnnualReturnPct
		}
	}

	for sym, ov := range overrides {
		if i, ok := seen[sym]; ok {
			apply(&merged[i], ov)
		}
	}
	for _, sym := range added {
		b := Benchmark{Symbol: sym, Name: sym}
		apply(&b, overrides[sym])
		merged = append(merged, b)
	}

	return merged
}

// Lookup finds a benchmark by symbol in the given set.
func Lookup(benchmarks []Benchmark, symbol string) (Benchmark, bool) {
	for _, b := range benchmarks {
		if b.Symbol == symbol {
			return b, true
		}
	}
	return Benchmark{}, false
}
