package physics

import "math"

const (
	// ElementaryCharge in coulombs.
	ElementaryCharge = 1.602176634e-19
	// ElectronMass in kilograms.
	ElectronMass = 9.10938356e-31
)

// SpeedFromKineticEnergy returns the non-relativistic speed of a particle
// of the given mass carrying ek electron volts.
func SpeedFromKineticEnergy(ek, mass float64) float64 {
	return math.Sqrt(2 * ek * ElementaryCharge / mass)
}

// GyroFrequency is the angular cyclotron frequency |q|B/m in rad/s.
func GyroFrequency(charge, field, mass float64) float64 {
	return math.Abs(charge) * math.Abs(field) / mass
}

// CyclotronRadius is m·v⊥ / (|q|·|B|). It is +Inf when q or B is zero.
func CyclotronRadius(mass, vPerp, charge, field float64) float64 {
	den := math.Abs(charge) * math.Abs(field)
	if den == 0 {
		return math.Inf(1)
	}
	return mass * math.Abs(vPerp) / den
}

func CyclotronPeriod(charge, field, mass float64) float64 {
	w := GyroFrequency(charge, field, mass)
	if w == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / w
}
