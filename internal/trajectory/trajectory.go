package trajectory

import (
	"context"
	"math"

	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/integrators"
	"github.com/san-kum/magtraj/internal/physics"
)

type Particle struct {
	Charge   float64
	Mass     float64
	Position dynamo.Vec3
	Velocity dynamo.Vec3
}

type Field struct {
	B dynamo.Vec3
}

type Sample struct {
	Time     float64
	Position dynamo.Vec3
	Velocity dynamo.Vec3
}

type Options struct {
	Dt    float64
	Steps int
	// Scheme names an integrator; empty selects integrators.Default.
	Scheme string
	// Cutoff stops integration once |position| exceeds it. Zero disables.
	Cutoff float64
	// Metrics are observed on every sample and reported in Trajectory.Metrics.
	Metrics []dynamo.Metric
}

type Trajectory struct {
	Samples   []Sample
	Dt        float64
	Scheme    string
	Truncated bool
	Metrics   map[string]float64
}

func Integrate(p Particle, f Field, opts Options) (*Trajectory, error) {
	return IntegrateContext(context.Background(), p, f, opts)
}

// IntegrateContext is Integrate with cancellation between steps.
func IntegrateContext(ctx context.Context, p Particle, f Field, opts Options) (*Trajectory, error) {
	if err := Validate(p, f, opts); err != nil {
		return nil, err
	}

	scheme := opts.Scheme
	if scheme == "" {
		scheme = integrators.Default
	}
	integ, err := integrators.New(scheme)
	if err != nil {
		return nil, err
	}

	sim := dynamo.New(physics.NewLorentz(p.Charge, p.Mass, f.B), integ)
	for _, m := range opts.Metrics {
		sim.AddMetric(m)
	}

	cfg := dynamo.Config{Dt: opts.Dt, Steps: opts.Steps, ValidateState: true}
	if opts.Cutoff > 0 {
		cutoff := opts.Cutoff
		cfg.Halt = func(x dynamo.State) bool {
			return x.Vec3At(0).Norm() > cutoff
		}
	}

	result, err := sim.Run(ctx, dynamo.PhaseState(p.Position, p.Velocity), cfg)
	if err != nil {
		return nil, err
	}

	tr := &Trajectory{
		Samples:   make([]Sample, len(result.States)),
		Dt:        opts.Dt,
		Scheme:    scheme,
		Truncated: result.Halted,
		Metrics:   result.Metrics,
	}
	for i, x := range result.States {
		pos, vel := dynamo.SplitPhase(x)
		tr.Samples[i] = Sample{Time: result.Times[i], Position: pos, Velocity: vel}
	}
	return tr, nil
}

// Validate reports the first invalid particle, field or option as a
// *dynamo.ParameterError. The scheme name is checked by integrators.New.
func Validate(p Particle, f Field, opts Options) error {
	switch {
	case math.IsNaN(p.Mass) || p.Mass <= 0 || math.IsInf(p.Mass, 0):
		return dynamo.InvalidParameter("mass", p.Mass, "must be positive and finite")
	case math.IsNaN(p.Charge) || math.IsInf(p.Charge, 0):
		return dynamo.InvalidParameter("charge", p.Charge, "must be finite")
	case !p.Position.IsFinite():
		return dynamo.InvalidParameter("position", p.Position, "must be finite")
	case !p.Velocity.IsFinite():
		return dynamo.InvalidParameter("velocity", p.Velocity, "must be finite")
	case !f.B.IsFinite():
		return dynamo.InvalidParameter("field", f.B, "must be finite")
	case opts.Steps <= 0:
		return dynamo.InvalidParameter("steps", opts.Steps, "must be positive")
	case math.IsNaN(opts.Dt) || opts.Dt <= 0 || math.IsInf(opts.Dt, 0):
		return dynamo.InvalidParameter("dt", opts.Dt, "must be positive and finite")
	case math.IsNaN(opts.Cutoff) || opts.Cutoff < 0:
		return dynamo.InvalidParameter("cutoff", opts.Cutoff, "must be zero or positive")
	}
	return nil
}

func (t *Trajectory) Len() int { return len(t.Samples) }

// Final returns the last sample. Integrate never returns an empty trajectory.
func (t *Trajectory) Final() Sample { return t.Samples[len(t.Samples)-1] }

func (t *Trajectory) Speeds() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Velocity.Norm()
	}
	return out
}
