package physics

import (
	"math"
	"testing"

	"github.com/san-kum/magtraj/internal/dynamo"
)

func TestLorentzDimensions(t *testing.T) {
	l := NewLorentz(-ElementaryCharge, ElectronMass, dynamo.Vec3{Z: 1e-3})
	if l.StateDim() != 6 {
		t.Errorf("expected state dim 6, got %d", l.StateDim())
	}
}

func TestLorentzForceDirection(t *testing.T) {
	// An electron moving along +x in a +z field is pushed toward +y.
	l := NewLorentz(-ElementaryCharge, ElectronMass, dynamo.Vec3{Z: 1e-3})
	x := dynamo.PhaseState(dynamo.Vec3{}, dynamo.Vec3{X: 1e6})

	dx := l.Derive(x, 0)

	if dx[0] != 1e6 || dx[1] != 0 || dx[2] != 0 {
		t.Errorf("position derivative should equal velocity, got %v", dx[:3])
	}
	if dx[4] <= 0 {
		t.Errorf("expected +y acceleration, got %g", dx[4])
	}
	if dx[3] != 0 || dx[5] != 0 {
		t.Errorf("expected acceleration only along y, got %v", dx[3:])
	}

	expected := ElementaryCharge * 1e6 * 1e-3 / ElectronMass
	if math.Abs(dx[4]-expected)/expected > 1e-12 {
		t.Errorf("acceleration = %g, want %g", dx[4], expected)
	}
}

func TestLorentzNoForce(t *testing.T) {
	tests := []struct {
		name   string
		charge float64
		field  dynamo.Vec3
		vel    dynamo.Vec3
	}{
		{"neutral", 0, dynamo.Vec3{Z: 1}, dynamo.Vec3{X: 1}},
		{"no field", ElementaryCharge, dynamo.Vec3{}, dynamo.Vec3{X: 1}},
		{"parallel", ElementaryCharge, dynamo.Vec3{Z: 1}, dynamo.Vec3{Z: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLorentz(tt.charge, ElectronMass, tt.field)
			a := l.Acceleration(tt.vel)
			if !a.IsZero() {
				t.Errorf("expected zero acceleration, got %v", a)
			}
		})
	}
}

func TestLorentzEnergy(t *testing.T) {
	l := NewLorentz(-ElementaryCharge, ElectronMass, dynamo.Vec3{Z: 1e-3})
	v := SpeedFromKineticEnergy(20, ElectronMass)
	x := dynamo.PhaseState(dynamo.Vec3{}, dynamo.Vec3{X: v})

	ev := l.Energy(x) / ElementaryCharge
	if math.Abs(ev-20) > 1e-9 {
		t.Errorf("expected 20 eV, got %f", ev)
	}
}

func TestCyclotronRadius(t *testing.T) {
	r := CyclotronRadius(9.11e-31, 1e6, -1.6e-19, 1e-3)
	if math.Abs(r-5.69375e-3) > 1e-8 {
		t.Errorf("radius = %g, want 5.69375e-3", r)
	}

	if !math.IsInf(CyclotronRadius(ElectronMass, 1e6, 0, 1e-3), 1) {
		t.Error("expected infinite radius for a neutral particle")
	}

	l := NewLorentz(-1.6e-19, 9.11e-31, dynamo.Vec3{Z: 1e-3})
	// The component along B does not contribute.
	if got := l.Radius(dynamo.Vec3{X: 1e6, Z: 3e6}); math.Abs(got-r) > 1e-12 {
		t.Errorf("Radius = %g, want %g", got, r)
	}
}

func TestCyclotronPeriod(t *testing.T) {
	w := GyroFrequency(ElementaryCharge, 2e-3, ElectronMass)
	period := CyclotronPeriod(ElementaryCharge, 2e-3, ElectronMass)
	if math.Abs(period*w-2*math.Pi) > 1e-12 {
		t.Errorf("period·ω = %g, want 2π", period*w)
	}
	if !math.IsInf(CyclotronPeriod(0, 2e-3, ElectronMass), 1) {
		t.Error("expected infinite period without charge")
	}
}
