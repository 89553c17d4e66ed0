package config

import "sort"

// Presets are named simulation settings. Applying one only touches the
// Simulation section.
var Presets = map[string]SimulationConfig{
	"classic": {Dt: 1e-11, Steps: 5000, Cutoff: 20, Scheme: "euler-cromer"},
	"boris":   {Dt: 1e-11, Steps: 5000, Cutoff: 20, Scheme: "boris"},
	"fine":    {Dt: 1e-12, Steps: 50000, Cutoff: 20, Scheme: "euler-cromer"},
	"rk4":     {Dt: 1e-11, Steps: 5000, Cutoff: 20, Scheme: "rk4"},
	"quick":   {Dt: 2e-11, Steps: 1000, Cutoff: 20, Scheme: "boris"},
}

func GetPreset(name string) (SimulationConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the simulation settings with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := GetPreset(name)
	if ok {
		c.Simulation = p
	}
	return ok
}
