package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt          = 1e-11
	DefaultSteps       = 5000
	DefaultCutoff      = 20.0
	DefaultScheme      = "euler-cromer"
	DefaultEnergyEV    = 20.0
	DefaultFieldTesla  = 2e-3
	DefaultOutput      = "electron_trajectories.png"
	DefaultFormat      = "png"
	DefaultWidthIn     = 14.0
	DefaultHeightIn    = 12.0
	DefaultDPI         = 300
	DefaultLengthScale = 100.0
	DefaultTickStep    = 5.0
	DefaultTitle       = "Electron Trajectories in Magnetic Fields"
)

type Config struct {
	Title      string           `yaml:"title"`
	Simulation SimulationConfig `yaml:"simulation"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Output     OutputConfig     `yaml:"output"`
	Workers    int              `yaml:"workers"`
	Panels     []PanelConfig    `yaml:"panels,omitempty"`
}

type SimulationConfig struct {
	Dt     float64 `yaml:"dt"`
	Steps  int     `yaml:"steps"`
	Cutoff float64 `yaml:"cutoff"`
	Scheme string  `yaml:"scheme"`
}

// DefaultsConfig holds the values a panel uses for every quantity it does
// not vary.
type DefaultsConfig struct {
	KineticEnergyEV float64 `yaml:"kinetic_energy_ev"`
	FieldTesla      float64 `yaml:"field_tesla"`
	// MassUnits and ChargeUnits are multiples of the electron mass and the
	// elementary charge.
	MassUnits   float64 `yaml:"mass_units"`
	ChargeUnits float64 `yaml:"charge_units"`
}

type OutputConfig struct {
	Path        string  `yaml:"path"`
	Format      string  `yaml:"format"`
	WidthIn     float64 `yaml:"width_in"`
	HeightIn    float64 `yaml:"height_in"`
	DPI         int     `yaml:"dpi"`
	LengthScale float64 `yaml:"length_scale"`
	TickStep    float64 `yaml:"tick_step"`
	Plane       string  `yaml:"plane"`
}

// PanelConfig declares one subplot: a title, the quantity being varied and
// its values (eV, tesla, electron masses or elementary charges).
type PanelConfig struct {
	Title  string    `yaml:"title"`
	Vary   string    `yaml:"vary"`
	Values []float64 `yaml:"values"`
	Colors []string  `yaml:"colors,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Title: DefaultTitle,
		Simulation: SimulationConfig{
			Dt:     DefaultDt,
			Steps:  DefaultSteps,
			Cutoff: DefaultCutoff,
			Scheme: DefaultScheme,
		},
		Defaults: DefaultsConfig{
			KineticEnergyEV: DefaultEnergyEV,
			FieldTesla:      DefaultFieldTesla,
			MassUnits:       1,
			ChargeUnits:     -1,
		},
		Output: OutputConfig{
			Path:        DefaultOutput,
			Format:      DefaultFormat,
			WidthIn:     DefaultWidthIn,
			HeightIn:    DefaultHeightIn,
			DPI:         DefaultDPI,
			LengthScale: DefaultLengthScale,
			TickStep:    DefaultTickStep,
			Plane:       "xy",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that are not re-checked by the integrator.
func (c *Config) Validate() error {
	if c.Output.LengthScale <= 0 {
		return fmt.Errorf("output.length_scale must be positive, got %g", c.Output.LengthScale)
	}
	if c.Output.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", c.Output.DPI)
	}
	if c.Output.WidthIn <= 0 || c.Output.HeightIn <= 0 {
		return fmt.Errorf("output size must be positive, got %gx%g in", c.Output.WidthIn, c.Output.HeightIn)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for i, p := range c.Panels {
		if len(p.Values) == 0 {
			return fmt.Errorf("panels[%d] (%s): no values", i, p.Title)
		}
	}
	return nil
}
