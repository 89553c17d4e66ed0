package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are read from MAGTRAJ_* variables and applied after the
// config file. Unset variables leave the config untouched.
type EnvOverrides struct {
	Output  string  `env:"MAGTRAJ_OUTPUT"`
	Format  string  `env:"MAGTRAJ_FORMAT"`
	Scheme  string  `env:"MAGTRAJ_SCHEME"`
	Preset  string  `env:"MAGTRAJ_PRESET"`
	Workers int     `env:"MAGTRAJ_WORKERS"`
	DPI     int     `env:"MAGTRAJ_DPI"`
	Dt      float64 `env:"MAGTRAJ_DT"`
	Steps   int     `env:"MAGTRAJ_STEPS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) ApplyEnv() error {
	var o EnvOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.Preset != "" && !c.ApplyPreset(o.Preset) {
		return fmt.Errorf("MAGTRAJ_PRESET: unknown preset %q (available: %v)", o.Preset, ListPresets())
	}
	if o.Output != "" {
		c.Output.Path = o.Output
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.Scheme != "" {
		c.Simulation.Scheme = o.Scheme
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.DPI != 0 {
		c.Output.DPI = o.DPI
	}
	if o.Dt != 0 {
		c.Simulation.Dt = o.Dt
	}
	if o.Steps != 0 {
		c.Simulation.Steps = o.Steps
	}
	return nil
}
