package config

import (
	"os"
	"testing"
)

func TestDefaultRates(t *testing.T) {
	r := DefaultRates()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"walls per sqft", r.WallsPerSqFt, 0.92},
		{"ceilings per sqft", r.CeilingsPerSqFt, 0.92},
		{"trim per linear ft", r.TrimPerLinearFt, 2.42},
		{"per door", r.PerDoor, 100.0},
		{"per door casing", r.PerDoorCasing, 35.0},
		{"per window", r.PerWindow, 25.0},
		{"feature wall per sqft", r.FeatureWallPerSqFt, 1.50},
		{"house per sqft", r.HousePerSqFt, 2.30},
		{"side body per sqft", r.SideBodyPerSqFt, 1.13},
		{"side trim per linear ft", r.SideTrimPerLnFt, 19.72},
		{"deck sanded per sqft", r.DeckSandedPerSqFt, 4.50},
		{"deck unsanded per sqft", r.DeckUnsandedPerSqFt, 2.25},
		{"fence transparent per sqft", r.FenceTransparentPerSqFt, 2.50},
		{"fence solid per sqft", r.FenceSolidPerSqFt, 2.00},
		{"cabinet base", r.CabinetBase, 500.0},
		{"cabinet per door", r.CabinetPerDoor, 160.0},
		{"cabinet per drawer", r.CabinetPerDrawer, 80.0},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	// Run from an empty directory so no config.yaml is picked up.
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "paintestimator" {
		t.Errorf("app name = %q, want paintestimator", cfg.App.Name)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging defaults = %q/%q, want info/console", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Rates != DefaultRates() {
		t.Errorf("rates = %+v, want the default table", cfg.Rates)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("rates:\n  walls_per_sqft: 1.10\nlogging:\n  level: debug\n")
	if err := os.WriteFile(dir+"/config.yaml", yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Rates.WallsPerSqFt != 1.10 {
		t.Errorf("walls per sqft = %v, want 1.10 from config file", cfg.Rates.WallsPerSqFt)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug from config file", cfg.Logging.Level)
	}
	// Keys the file does not set keep their defaults.
	if cfg.Rates.CabinetBase != 500.0 {
		t.Errorf("cabinet base = %v, want default 500", cfg.Rates.CabinetBase)
	}
}
