// Package physics provides the charged-particle model used by the
// simulator.
//
// [Lorentz] implements [dynamo.System] for a point charge in a uniform
// magnetic field, with the state laid out as [x, y, z, vx, vy, vz]:
//
//	dyn := physics.NewLorentz(-physics.ElementaryCharge, physics.ElectronMass, dynamo.Vec3{Z: 2e-3})
//	if h, ok := dynamo.System(dyn).(dynamo.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
//
// Everything is non-relativistic and in SI units.
package physics
