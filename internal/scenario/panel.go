package scenario

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/trajectory"
)

// Vary names the quantity a panel sweeps.
type Vary string

const (
	VaryField  Vary = "field"
	VaryEnergy Vary = "energy"
	VaryMass   Vary = "mass"
	VaryCharge Vary = "charge"
)

func ParseVary(s string) (Vary, error) {
	switch v := Vary(s); v {
	case VaryField, VaryEnergy, VaryMass, VaryCharge:
		return v, nil
	}
	return "", dynamo.InvalidParameter("vary", s, "want field, energy, mass or charge")
}

// Title is the default panel title for the quantity.
func (v Vary) Title() string {
	switch v {
	case VaryField:
		return "Varying Magnetic Field Strength"
	case VaryEnergy:
		return "Varying Kinetic Energy"
	case VaryMass:
		return "Varying Particle Mass"
	case VaryCharge:
		return "Charge Sign Comparison"
	}
	return string(v)
}

// Activity is the progress message shown while a panel runs.
func (v Vary) Activity() string {
	switch v {
	case VaryField:
		return "magnetic field variations"
	case VaryEnergy:
		return "energy variations"
	case VaryMass:
		return "mass variations"
	case VaryCharge:
		return "charge sign comparison"
	}
	return string(v) + " variations"
}

// Label formats one swept value for the legend. Field values are in
// tesla, energies in eV, masses in electron masses, charges in units of e.
func (v Vary) Label(value float64) string {
	switch v {
	case VaryField:
		return fmt.Sprintf("B = %.1f mT", value*1e3)
	case VaryEnergy:
		return "E = " + strconv.FormatFloat(value, 'g', -1, 64) + " eV"
	case VaryMass:
		return fmt.Sprintf("m = %.1fmₑ", value)
	case VaryCharge:
		switch value {
		case -1:
			return "Electron (q=-e)"
		case 1:
			return "Positron (q=+e)"
		}
		return fmt.Sprintf("q = %+ge", value)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// Defaults are the values of every quantity a panel holds fixed.
type Defaults struct {
	EnergyEV    float64
	FieldTesla  float64
	MassUnits   float64
	ChargeUnits float64
}

func DefaultDefaults() Defaults {
	return Defaults{EnergyEV: 20, FieldTesla: 2e-3, MassUnits: 1, ChargeUnits: -1}
}

type Panel struct {
	Title  string
	Vary   Vary
	Values []float64
	// Colors overrides the palette, one hex colour per value.
	Colors []string
}

// Series is one line of a panel: a particle launched from the origin
// along +x into a field along +z.
type Series struct {
	Label    string
	Color    string
	Particle trajectory.Particle
	Field    trajectory.Field
}

// DefaultPanels are the four comparisons of the standard figure.
func DefaultPanels() []Panel {
	return []Panel{
		{Title: VaryField.Title(), Vary: VaryField, Values: []float64{1e-3, 2e-3, 5e-3}},
		{Title: VaryEnergy.Title(), Vary: VaryEnergy, Values: []float64{10, 20, 40}},
		{Title: VaryMass.Title(), Vary: VaryMass, Values: []float64{1, 2, 4}},
		{Title: VaryCharge.Title(), Vary: VaryCharge, Values: []float64{-1, 1}},
	}
}

// Series resolves the panel against d. The launch speed comes from the
// kinetic energy and the mass of each particle.
func (p Panel) Series(d Defaults) ([]Series, error) {
	if _, err := ParseVary(string(p.Vary)); err != nil {
		return nil, err
	}
	if len(p.Values) == 0 {
		return nil, dynamo.InvalidParameter("values", p.Values, "panel needs at least one value")
	}
	if len(p.Colors) > 0 && len(p.Colors) != len(p.Values) {
		return nil, dynamo.InvalidParameter("colors", p.Colors, fmt.Sprintf("want %d colours", len(p.Values)))
	}

	colors := p.Colors
	if len(colors) == 0 {
		colors = p.palette()
	}

	out := make([]Series, len(p.Values))
	for i, value := range p.Values {
		energy, field, mass, charge := d.EnergyEV, d.FieldTesla, d.MassUnits, d.ChargeUnits
		switch p.Vary {
		case VaryField:
			field = value
		case VaryEnergy:
			energy = value
		case VaryMass:
			mass = value
		case VaryCharge:
			charge = value
		}
		if math.IsNaN(energy) || energy < 0 {
			return nil, dynamo.InvalidParameter("energy", energy, "must not be negative")
		}

		m := mass * physics.ElectronMass
		v0 := 0.0
		if m > 0 {
			v0 = physics.SpeedFromKineticEnergy(energy, m)
		}
		out[i] = Series{
			Label: p.Vary.Label(value),
			Color: colors[i],
			Particle: trajectory.Particle{
				Charge:   charge * physics.ElementaryCharge,
				Mass:     m,
				Velocity: dynamo.Vec3{X: v0},
			},
			Field: trajectory.Field{B: dynamo.Vec3{Z: field}},
		}
	}
	return out, nil
}

func (p Panel) palette() []string {
	if p.Vary == VaryCharge {
		colors := make([]string, len(p.Values))
		for i, q := range p.Values {
			switch {
			case q < 0:
				colors[i] = "#0000ff"
			case q > 0:
				colors[i] = "#ff0000"
			default:
				colors[i] = "#808080"
			}
		}
		return colors
	}
	return Viridis(len(p.Values))
}
