package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Vec3At reads three consecutive components starting at i.
func (s State) Vec3At(i int) Vec3 {
	return Vec3{s[i], s[i+1], s[i+2]}
}

// PhaseState packs a position and a velocity into the [x, y, z, vx, vy, vz]
// layout used by second-order systems.
func PhaseState(pos, vel Vec3) State {
	return State{pos.X, pos.Y, pos.Z, vel.X, vel.Y, vel.Z}
}

// SplitPhase is the inverse of PhaseState.
func SplitPhase(s State) (pos, vel Vec3) {
	return s.Vec3At(0), s.Vec3At(3)
}

// System is a first-order ODE dX/dt = f(X, t). Second-order systems keep
// positions in the first half of the state and velocities in the second.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

// Magnetized is implemented by systems whose acceleration is
// (q/m) v × B in a uniform field.
type Magnetized interface {
	ChargeToMass() float64
	MagneticField() Vec3
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Config drives a fixed-step run. Halt, when set, is consulted after every
// step; returning true keeps that step and ends the run.
type Config struct {
	Dt            float64
	Steps         int
	ValidateState bool
	Halt          func(x State) bool
}

type Result struct {
	States      []State
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Halted      bool
}
