// Package dynamo provides core simulation primitives for charged-particle
// dynamics.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [Vec3]: 3D vector used for positions, velocities and fields
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	dyn := physics.NewLorentz(q, m, b)
//	integ := integrators.NewEulerCromer()
//	sim := dynamo.New(dyn, integ)
//	result, _ := sim.Run(ctx, x0, dynamo.Config{Dt: 1e-11, Steps: 5000})
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe, and some integrators keep
// scratch buffers. Build one simulator per goroutine.
package dynamo
