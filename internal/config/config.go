// Package config loads and saves drip's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"drip/internal/market"

	"github.com/BurntSushi/toml"
)

// Config holds all drip configuration.
type Config struct {
	Defaults   DefaultsConfig               `toml:"defaults"`
	Appearance AppearanceConfig             `toml:"appearance"`
	History    HistoryConfig                `toml:"history"`
	Benchmarks map[string]BenchmarkOverride `toml:"benchmarks,omitempty"`
}

// DefaultsConfig holds the projection inputs used when no flag is given.
type DefaultsConfig struct {
	Contribution float64 `toml:"contribution"`
	Cadence      string  `toml:"cadence"`
	Years        int     `toml:"years"`
	Benchmark    string  `toml:"benchmark"`
	// ReturnPct, when set, overrides the selected benchmark's return.
	ReturnPct *float64 `toml:"return_pct,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// HistoryConfig holds scenario history settings.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
}

// BenchmarkOverride adjusts or adds a benchmark instrument.
type BenchmarkOverride struct {
	Name            string   `toml:"name,omitempty"`
	Description     string   `toml:"description,omitempty"`
	AnnualReturnPct *float64 `toml:"annual_return_pct,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Defaults: DefaultsConfig{
			Contribution: 200,
			Cadence:      "biweekly",
			Years:        30,
			Benchmark:    "VOO",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "drip")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "drip")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// HistoryPath returns the path to the scenario history database.
func HistoryPath() string {
	return filepath.Join(Dir(), "history.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// BenchmarkSet returns the default benchmarks with this config's overrides
// applied.
func (c Config) BenchmarkSet() []market.Benchmark {
	if len(c.Benchmarks) == 0 {
		return market.Merge(nil)
	}
	overrides := make(map[string]market.Override, len(c.Benchmarks))
	for sym, ov := range c.Benchmarks {
		overrides[sym] = market.Override{
			Name:            ov.Name,
			Description:     ov.Description,
			AnnualReturnPct: ov.AnnualReturnPct,
		}
	}
	return market.Merge(overrides)
}
