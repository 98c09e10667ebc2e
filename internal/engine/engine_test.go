package engine

import (
	"errors"
	"math"
	"testing"
)

func mustProject(t *testing.T, in Input) Result {
	t.Helper()
	res, err := Project(in)
	if err != nil {
		t.Fatalf("Project(%+v): unexpected error: %v", in, err)
	}
	return res
}

func TestProject_Invariants(t *testing.T) {
	inputs := []Input{
		{Contribution: 200, Frequency: 26, Years: 30, AnnualReturnPct: 10.5},
		{Contribution: 100, Frequency: 12, Years: 1, AnnualReturnPct: 0},
		{Contribution: 50, Frequency: 52, Years: 5, AnnualReturnPct: 7.2},
		{Contribution: 500, Frequency: 24, Years: 40, AnnualReturnPct: 4},
		{Contribution: 300, Frequency: 12, Years: 10, AnnualReturnPct: -3},
	}

	for _, in := range inputs {
		res := mustProject(t, in)

		wantContributed := in.Contribution * float64(in.Frequency) * float64(in.Years)
		if res.Contributed != wantContributed {
			t.Errorf("Contributed = %v, want %v", res.Contributed, wantContributed)
		}
		if res.Earnings != res.Total-res.Contributed {
			t.Errorf("Earnings = %v, want Total-Contributed = %v", res.Earnings, res.Total-res.Contributed)
		}
		if len(res.YearEnd) != in.Years {
			t.Errorf("len(YearEnd) = %d, want %d", len(res.YearEnd), in.Years)
		}
		if in.Years >= 1 && res.YearEnd[in.Years-1] != res.Total {
			t.Errorf("YearEnd[last] = %v, want Total %v", res.YearEnd[in.Years-1], res.Total)
		}
		if in.AnnualReturnPct >= 0 && res.Earnings < 0 {
			t.Errorf("Earnings = %v negative with non-negative rate", res.Earnings)
		}
		for i, v := range res.YearEnd {
			if v < 0 {
				t.Errorf("YearEnd[%d] = %v negative with non-negative inputs", i, v)
			}
		}
	}
}

func TestProject_MonotonicSnapshots(t *testing.T) {
	res := mustProject(t, Input{Contribution: 250, Frequency: 26, Years: 25, AnnualReturnPct: 8})
	for i := 1; i < len(res.YearEnd); i++ {
		if res.YearEnd[i] < res.YearEnd[i-1] {
			t.Fatalf("YearEnd[%d] = %v < YearEnd[%d] = %v", i, res.YearEnd[i], i-1, res.YearEnd[i-1])
		}
	}
}

func TestProject_BiweeklyThirtyYears(t *testing.T) {
	res := mustProject(t, Input{Contribution: 200, Frequency: 26, Years: 30, AnnualReturnPct: 10.5})

	if res.Contributed != 156000 {
		t.Errorf("Contributed = %v, want 156000", res.Contributed)
	}
	// Start-of-period deposits at 10.5%/26 per period land in the $1.15M-$1.2M range.
	if res.Total < 1.10e6 || res.Total > 1.25e6 {
		t.Errorf("Total = %v, want roughly 1.15M-1.2M", res.Total)
	}
	if res.Earnings != res.Total-156000 {
		t.Errorf("Earnings = %v, want %v", res.Earnings, res.Total-156000)
	}
	if len(res.YearEnd) != 30 {
		t.Fatalf("len(YearEnd) = %d, want 30", len(res.YearEnd))
	}
	for i := 1; i < 30; i++ {
		if res.YearEnd[i] <= res.YearEnd[i-1] {
			t.Fatalf("snapshots not strictly increasing at year %d", i+1)
		}
	}
}

func TestProject_ZeroContribution(t *testing.T) {
	res := mustProject(t, Input{Contribution: 0, Frequency: 12, Years: 10, AnnualReturnPct: 7})

	if res.Total != 0 || res.Contributed != 0 || res.Earnings != 0 {
		t.Errorf("got total=%v contributed=%v earnings=%v, want all zero", res.Total, res.Contributed, res.Earnings)
	}
	if len(res.YearEnd) != 10 {
		t.Fatalf("len(YearEnd) = %d, want 10", len(res.YearEnd))
	}
	for i, v := range res.YearEnd {
		if v != 0 {
			t.Errorf("YearEnd[%d] = %v, want 0", i, v)
		}
	}
}

func TestProject_ZeroRate(t *testing.T) {
	res := mustProject(t, Input{Contribution: 100, Frequency: 12, Years: 1, AnnualReturnPct: 0})

	if res.Total != 1200 {
		t.Errorf("Total = %v, want exactly 1200", res.Total)
	}
	if len(res.YearEnd) != 1 || res.YearEnd[0] != 1200 {
		t.Errorf("YearEnd = %v, want [1200]", res.YearEnd)
	}
	if res.Earnings != 0 {
		t.Errorf("Earnings = %v, want 0", res.Earnings)
	}
}

func TestProject_ZeroRateIdentityLongHorizon(t *testing.T) {
	in := Input{Contribution: 175, Frequency: 26, Years: 20, AnnualReturnPct: 0}
	res := mustProject(t, in)

	want := in.Contribution * float64(in.Frequency) * float64(in.Years)
	if diff := math.Abs(res.Total - want); diff > 1e-6 {
		t.Errorf("Total = %v, want %v within epsilon (diff %v)", res.Total, want, diff)
	}
}

func TestProject_ZeroYears(t *testing.T) {
	res := mustProject(t, Input{Contribution: 200, Frequency: 26, Years: 0, AnnualReturnPct: 10.5})

	if res.Total != 0 || res.Contributed != 0 || res.Earnings != 0 {
		t.Errorf("got total=%v contributed=%v earnings=%v, want all zero", res.Total, res.Contributed, res.Earnings)
	}
	if len(res.YearEnd) != 0 {
		t.Errorf("YearEnd = %v, want empty", res.YearEnd)
	}
}

func TestProject_NegativeRate(t *testing.T) {
	res := mustProject(t, Input{Contribution: 100, Frequency: 12, Years: 5, AnnualReturnPct: -10})

	if res.Earnings >= 0 {
		t.Errorf("Earnings = %v, want negative under a -10%% rate", res.Earnings)
	}
	if res.Total >= res.Contributed {
		t.Errorf("Total = %v not below Contributed = %v", res.Total, res.Contributed)
	}
	if res.Total <= 0 {
		t.Errorf("Total = %v, balance should stay positive while contributing", res.Total)
	}
}

func TestProject_Deterministic(t *testing.T) {
	in := Input{Contribution: 333.33, Frequency: 26, Years: 15, AnnualReturnPct: 9.1}
	a := mustProject(t, in)
	b := mustProject(t, in)

	if a.Total != b.Total || a.Earnings != b.Earnings {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
	for i := range a.YearEnd {
		if a.YearEnd[i] != b.YearEnd[i] {
			t.Errorf("YearEnd[%d] differs: %v vs %v", i, a.YearEnd[i], b.YearEnd[i])
		}
	}
}

func TestProject_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"negative contribution", Input{Contribution: -1, Frequency: 12, Years: 1}},
		{"zero frequency", Input{Contribution: 100, Frequency: 0, Years: 1}},
		{"negative frequency", Input{Contribution: 100, Frequency: -26, Years: 1}},
		{"negative years", Input{Contribution: 100, Frequency: 12, Years: -1}},
		{"NaN contribution", Input{Contribution: math.NaN(), Frequency: 12, Years: 1}},
		{"Inf contribution", Input{Contribution: math.Inf(1), Frequency: 12, Years: 1}},
		{"NaN rate", Input{Contribution: 100, Frequency: 12, Years: 1, AnnualReturnPct: math.NaN()}},
		{"+Inf rate", Input{Contribution: 100, Frequency: 12, Years: 1, AnnualReturnPct: math.Inf(1)}},
		{"-Inf rate", Input{Contribution: 100, Frequency: 12, Years: 1, AnnualReturnPct: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Project(%+v) error = %v, want ErrInvalidInput", tt.in, err)
			}
		})
	}
}

func TestProject_InfiniteResultPropagates(t *testing.T) {
	// An absurd rate/horizon combination overflows; the engine lets it through.
	res := mustProject(t, Input{Contribution: 1e300, Frequency: 52, Years: 100, AnnualReturnPct: 1e6})

	if !math.IsInf(res.Total, 1) {
		t.Errorf("Total = %v, want +Inf to propagate", res.Total)
	}
}

func BenchmarkProject(b *testing.B) {
	in := Input{Contribution: 200, Frequency: 26, Years: 50, AnnualReturnPct: 10.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Project(in); err != nil {
			b.Fatal(err)
		}
	}
}
