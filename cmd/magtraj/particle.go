package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/config"
	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/physics"
	"github.com/san-kum/magtraj/internal/trajectory"
)

// particleFlags describe a single particle launched from the origin along
// +x, with an optional drift along the field.
type particleFlags struct {
	charge float64
	mass   float64
	energy float64
	field  float64
	vz     float64
	dt     float64
	steps  int
	cutoff float64

	// defaultSteps replaces the stock config step count for commands that
	// need a longer run.
	defaultSteps int
}

func (p *particleFlags) register(cmd *cobra.Command, steps int) {
	p.defaultSteps = steps
	f := cmd.Flags()
	f.Float64Var(&p.charge, "charge", -1, "charge in units of e")
	f.Float64Var(&p.mass, "mass", 1, "mass in electron masses")
	f.Float64Var(&p.energy, "energy", config.DefaultEnergyEV, "kinetic energy in eV")
	f.Float64Var(&p.field, "field", config.DefaultFieldTesla, "field along z in tesla")
	f.Float64Var(&p.vz, "vz", 0, "velocity along the field in m/s")
	f.Float64Var(&p.dt, "dt", config.DefaultDt, "timestep in seconds")
	f.IntVar(&p.steps, "steps", steps, "number of steps")
	f.Float64Var(&p.cutoff, "cutoff", config.DefaultCutoff, "stop once |position| exceeds this many metres (0 disables)")
}

// resolve builds the particle and options. dt, steps and cutoff come from
// the layered config unless their flag was set. A command with its own
// step default uses it while the config still holds the stock count.
func (p *particleFlags) resolve(cmd *cobra.Command, cfg *config.Config) (trajectory.Particle, trajectory.Field, trajectory.Options, error) {
	var (
		particle trajectory.Particle
		field    trajectory.Field
		opts     trajectory.Options
	)
	if math.IsNaN(p.energy) || p.energy < 0 || math.IsInf(p.energy, 0) {
		return particle, field, opts, dynamo.InvalidParameter("energy", p.energy, "must be zero or positive and finite")
	}

	mass := p.mass * physics.ElectronMass
	v0 := 0.0
	if mass > 0 {
		v0 = physics.SpeedFromKineticEnergy(p.energy, mass)
	}

	flags := cmd.Flags()
	dt := cfg.Simulation.Dt
	if flags.Changed("dt") {
		dt = p.dt
	}
	steps := cfg.Simulation.Steps
	switch {
	case flags.Changed("steps"):
		steps = p.steps
	case steps == config.DefaultSteps && p.defaultSteps > 0:
		steps = p.defaultSteps
	}
	cutoff := cfg.Simulation.Cutoff
	if flags.Changed("cutoff") {
		cutoff = p.cutoff
	}

	particle = trajectory.Particle{
		Charge:   p.charge * physics.ElementaryCharge,
		Mass:     mass,
		Velocity: dynamo.Vec3{X: v0, Z: p.vz},
	}
	field = trajectory.Field{B: dynamo.Vec3{Z: p.field}}
	opts = trajectory.Options{
		Dt:     dt,
		Steps:  steps,
		Scheme: cfg.Simulation.Scheme,
		Cutoff: cutoff,
	}
	return particle, field, opts, nil
}
