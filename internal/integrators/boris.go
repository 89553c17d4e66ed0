package integrators

import "github.com/san-kum/magtraj/internal/dynamo"

// Boris is the standard particle pusher for magnetic fields. With no
// electric field the velocity update is an exact rotation, so speed is
// preserved to rounding. Systems that are not dynamo.Magnetized fall back to
// Euler-Cromer.
type Boris struct {
	fallback EulerCromer
}

func NewBoris() *Boris {
	return &Boris{}
}

func (b *Boris) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	m, ok := dyn.(dynamo.Magnetized)
	if !ok || len(x) != 6 {
		return b.fallback.Step(dyn, x, t, dt)
	}

	pos, vel := dynamo.SplitPhase(x)

	tv := m.MagneticField().Scale(0.5 * m.ChargeToMass() * dt)
	sv := tv.Scale(2 / (1 + tv.Dot(tv)))

	vPrime := vel.Add(vel.Cross(tv))
	vNew := vel.Add(vPrime.Cross(sv))
	pNew := pos.Add(vNew.Scale(dt))

	return dynamo.PhaseState(pNew, vNew)
}
