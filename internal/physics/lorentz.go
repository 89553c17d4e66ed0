package physics

import "github.com/san-kum/magtraj/internal/dynamo"

// Lorentz models a point charge in a uniform magnetic field, F = q(v × B).
type Lorentz struct {
	Charge float64
	Mass   float64
	Field  dynamo.Vec3
}

func NewLorentz(charge, mass float64, field dynamo.Vec3) *Lorentz {
	return &Lorentz{Charge: charge, Mass: mass, Field: field}
}

func (l *Lorentz) StateDim() int { return 6 }

func (l *Lorentz) Derive(x dynamo.State, _ float64) dynamo.State {
	if len(x) < 6 {
		return make(dynamo.State, 6)
	}
	v := x.Vec3At(3)
	a := l.Acceleration(v)
	return dynamo.State{v.X, v.Y, v.Z, a.X, a.Y, a.Z}
}

// Acceleration is (q/m) v × B. The cross product is taken in 3D even when
// the motion is planar.
func (l *Lorentz) Acceleration(v dynamo.Vec3) dynamo.Vec3 {
	return v.Cross(l.Field).Scale(l.Charge / l.Mass)
}

// Energy is the kinetic energy in joules; the magnetic force does no work.
func (l *Lorentz) Energy(x dynamo.State) float64 {
	if len(x) < 6 {
		return 0
	}
	v := x.Vec3At(3)
	return 0.5 * l.Mass * v.Dot(v)
}

func (l *Lorentz) ChargeToMass() float64 { return l.Charge / l.Mass }

func (l *Lorentz) MagneticField() dynamo.Vec3 { return l.Field }

// Radius is the cyclotron radius for velocity v, using the component
// perpendicular to B.
func (l *Lorentz) Radius(v dynamo.Vec3) float64 {
	b := l.Field.Norm()
	if b == 0 {
		return CyclotronRadius(l.Mass, v.Norm(), l.Charge, 0)
	}
	vPerp := v.Cross(l.Field).Norm() / b
	return CyclotronRadius(l.Mass, vPerp, l.Charge, b)
}
