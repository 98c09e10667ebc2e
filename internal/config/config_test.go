package config

import (
	"os"
	"path/filepath"
	"testing"
)

// useTempConfigDir points XDG_CONFIG_HOME at a temp dir for the test.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Contribution != 200 || cfg.Defaults.Cadence != "biweekly" {
		t.Errorf("defaults not applied: %+v", cfg.Defaults)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true by default")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := Default()
	cfg.Defaults.Contribution = 350
	cfg.Defaults.Years = 25
	cfg.Appearance.Theme = "terminal"
	rate := 8.8
	cfg.Defaults.ReturnPct = &rate

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Defaults.Contribution != 350 || got.Defaults.Years != 25 {
		t.Errorf("Defaults = %+v, want contribution 350 years 25", got.Defaults)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", got.Appearance.Theme)
	}
	if got.Defaults.ReturnPct == nil || *got.Defaults.ReturnPct != 8.8 {
		t.Errorf("ReturnPct = %v, want 8.8", got.Defaults.ReturnPct)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := useTempConfigDir(t)

	cfgDir := filepath.Join(dir, "drip")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("{{not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load: expected parse error for corrupt file")
	}
}

func TestBenchmarkSet_AppliesOverrides(t *testing.T) {
	rate := 7.7
	cfg := Default()
	cfg.Benchmarks = map[string]BenchmarkOverride{
		"VOO":  {AnnualReturnPct: &rate},
		"SCHD": {Name: "Dividend Equity", AnnualReturnPct: &rate},
	}

	set := cfg.BenchmarkSet()

	var foundVOO, foundSCHD bool
	for _, b := range set {
		switch b.Symbol {
		case "VOO":
			foundVOO = true
			if b.AnnualReturnPct != 7.7 {
				t.Errorf("VOO return = %v, want 7.7", b.AnnualReturnPct)
			}
		case "SCHD":
			foundSCHD = true
			if b.Name != "Dividend Equity" {
				t.Errorf("SCHD name = %q", b.Name)
			}
		}
	}
	if !foundVOO || !foundSCHD {
		t.Errorf("missing benchmarks: VOO=%v SCHD=%v", foundVOO, foundSCHD)
	}
}
