// Package config loads the pricing rate table and app settings.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
	Rates   Rates         `mapstructure:"rates"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Rates is the full per-unit price table for every billable item.
// Values are currency per unit (sq ft, linear ft or count) except the
// flat fees. A rate change is a configuration change, never code.
type Rates struct {
	WallsPerSqFt       float64 `mapstructure:"walls_per_sqft"`
	CeilingsPerSqFt    float64 `mapstructure:"ceilings_per_sqft"`
	TrimPerLinearFt    float64 `mapstructure:"trim_per_linear_ft"`
	PerDoor            float64 `mapstructure:"per_door"`
	PerDoorCasing      float64 `mapstructure:"per_door_casing"`
	PerWindow          float64 `mapstructure:"per_window"`
	FeatureWallPerSqFt float64 `mapstructure:"feature_wall_per_sqft"`

	HousePerSqFt            float64 `mapstructure:"house_per_sqft"`
	SideBodyPerSqFt         float64 `mapstructure:"side_body_per_sqft"`
	SideTrimPerLnFt         float64 `mapstructure:"side_trim_per_linear_ft"`
	DeckSandedPerSqFt       float64 `mapstructure:"deck_sanded_per_sqft"`
	DeckUnsandedPerSqFt     float64 `mapstructure:"deck_unsanded_per_sqft"`
	FenceTransparentPerSqFt float64 `mapstructure:"fence_transparent_per_sqft"`
	FenceSolidPerSqFt       float64 `mapstructure:"fence_solid_per_sqft"`

	CabinetBase      float64 `mapstructure:"cabinet_base"`
	CabinetPerDoor   float64 `mapstructure:"cabinet_per_door"`
	CabinetPerDrawer float64 `mapstructure:"cabinet_per_drawer"`
}

// Load reads config.yaml (if present), applies env overrides and fills in
// the default rate table. Missing files are fine; defaults carry the app.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultRates returns the rate table as shipped, without consulting any
// config file. Calculators and tests that need a fixed table use this.
func DefaultRates() Rates {
	return Rates{
		WallsPerSqFt:       0.92,
		CeilingsPerSqFt:    0.92,
		TrimPerLinearFt:    2.42,
		PerDoor:            100.0,
		PerDoorCasing:      35.0,
		PerWindow:          25.0,
		FeatureWallPerSqFt: 1.50,

		HousePerSqFt:            2.30,
		SideBodyPerSqFt:         1.13,
		SideTrimPerLnFt:         19.72,
		DeckSandedPerSqFt:       4.50,
		DeckUnsandedPerSqFt:     2.25,
		FenceTransparentPerSqFt: 2.50,
		FenceSolidPerSqFt:       2.00,

		CabinetBase:      500.0,
		CabinetPerDoor:   160.0,
		CabinetPerDrawer: 80.0,
	}
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "paintestimator")
	v.SetDefault("app.environment", "development")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	r := DefaultRates()
	v.SetDefault("rates.walls_per_sqft", r.WallsPerSqFt)
	v.SetDefault("rates.ceilings_per_sqft", r.CeilingsPerSqFt)
	v.SetDefault("rates.trim_per_linear_ft", r.TrimPerLinearFt)
	v.SetDefault("rates.per_door", r.PerDoor)
	v.SetDefault("rates.per_door_casing", r.PerDoorCasing)
	v.SetDefault("rates.per_window", r.PerWindow)
	v.SetDefault("rates.feature_wall_per_sqft", r.FeatureWallPerSqFt)
	v.SetDefault("rates.house_per_sqft", r.HousePerSqFt)
	v.SetDefault("rates.side_body_per_sqft", r.SideBodyPerSqFt)
	v.SetDefault("rates.side_trim_per_linear_ft", r.SideTrimPerLnFt)
	v.SetDefault("rates.deck_sanded_per_sqft", r.DeckSandedPerSqFt)
	v.SetDefault("rates.deck_unsanded_per_sqft", r.DeckUnsandedPerSqFt)
	v.SetDefault("rates.fence_transparent_per_sqft", r.FenceTransparentPerSqFt)
	v.SetDefault("rates.fence_solid_per_sqft", r.FenceSolidPerSqFt)
	v.SetDefault("rates.cabinet_base", r.CabinetBase)
	v.SetDefault("rates.cabinet_per_door", r.CabinetPerDoor)
	v.SetDefault("rates.cabinet_per_drawer", r.CabinetPerDrawer)
}
