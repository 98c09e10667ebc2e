package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSaveAndListRuns(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{SavedAt: base, Contribution: 200, Frequency: 26, Years: 30, ReturnPct: 10.5, Benchmark: "VOO", Total: 1.15e6, Contributed: 156000, Earnings: 1.15e6 - 156000},
		{SavedAt: base.Add(time.Hour), Contribution: 500, Frequency: 12, Years: 20, ReturnPct: 7, Benchmark: "BND", Total: 260000, Contributed: 120000, Earnings: 140000},
	}
	for _, r := range runs {
		if _, err := h.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	got, err := h.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Benchmark != "BND" || got[1].Benchmark != "VOO" {
		t.Errorf("order = %q, %q; want BND, VOO", got[0].Benchmark, got[1].Benchmark)
	}
	if got[1].Contribution != 200 || got[1].Frequency != 26 || got[1].Years != 30 {
		t.Errorf("inputs not round-tripped: %+v", got[1])
	}
	if got[1].Total != 1.15e6 {
		t.Errorf("Total = %v, want 1.15e6", got[1].Total)
	}
	if !got[1].SavedAt.Equal(base) {
		t.Errorf("SavedAt = %v, want %v", got[1].SavedAt, base)
	}
}

func TestListRuns_Limit(t *testing.T) {
	h := openTestHistory(t)

	for i := 0; i < 5; i++ {
		r := Run{
			SavedAt:      time.Date(2026, 8, 1, i, 0, 0, 0, time.UTC),
			Contribution: float64(100 * (i + 1)),
			Frequency:    12,
			Years:        10,
		}
		if _, err := h.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := h.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Contribution != 500 {
		t.Errorf("newest run contribution = %v, want 500", got[0].Contribution)
	}
}

func TestCountAndClear(t *testing.T) {
	h := openTestHistory(t)

	if _, err := h.SaveRun(Run{Contribution: 100, Frequency: 12, Years: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.SaveRun(Run{Contribution: 200, Frequency: 26, Years: 10}); err != nil {
		t.Fatal(err)
	}

	n, err := h.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	n, err = h.Count()
	if err != nil {
		t.Fatalf("Count after Clear: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d after Clear, want 0", n)
	}
}

func TestSaveRun_DefaultsTimestamp(t *testing.T) {
	h := openTestHistory(t)

	before := time.Now().Add(-time.Second)
	if _, err := h.SaveRun(Run{Contribution: 100, Frequency: 12, Years: 1}); err != nil {
		t.Fatal(err)
	}

	got, err := h.ListRuns(1)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListRuns: %v (%d rows)", err, len(got))
	}
	if got[0].SavedAt.Before(before) {
		t.Errorf("SavedAt = %v, expected a recent timestamp", got[0].SavedAt)
	}
}
