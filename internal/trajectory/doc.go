// Package trajectory integrates the motion of a single charged particle in
// a uniform magnetic field.
//
// [Integrate] is a pure function of its inputs: it validates the particle,
// field and options, steps the Lorentz force law with the selected scheme
// and returns an immutable [Trajectory] of N+1 samples (the initial state
// plus one sample per step). Units are SI throughout and no conversion is
// performed.
//
// Invalid inputs (non-positive mass, step count or dt, non-finite values)
// fail with an error matching [dynamo.ErrInvalidParameter]. A zero charge
// or a zero field is valid and yields straight-line motion.
package trajectory
