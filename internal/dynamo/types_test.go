package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPhaseStateRoundTrip(t *testing.T) {
	pos := Vec3{1, 2, 3}
	vel := Vec3{-4, 5, -6}

	s := PhaseState(pos, vel)
	if len(s) != 6 {
		t.Fatalf("expected 6 components, got %d", len(s))
	}

	gotPos, gotVel := SplitPhase(s)
	if gotPos != pos || gotVel != vel {
		t.Errorf("SplitPhase = %v %v, want %v %v", gotPos, gotVel, pos, vel)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Errorf("y × x = %v, want %v", got, z.Scale(-1))
	}
	if got := x.Cross(z); got != (Vec3{0, -1, 0}) {
		t.Errorf("x × z = %v, want -y", got)
	}
	if got := (Vec3{3, 4, 12}).Norm(); got != 13 {
		t.Errorf("Norm = %v, want 13", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{1, math.NaN(), 3}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec3{math.Inf(-1), 0, 0}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}

func TestParameterError(t *testing.T) {
	err := InvalidParameter("mass", 0.0, "must be positive")

	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("ParameterError does not unwrap to ErrInvalidParameter")
	}

	var pe *ParameterError
	if !errors.As(err, &pe) {
		t.Fatal("expected *ParameterError")
	}
	if pe.Name != "mass" {
		t.Errorf("Name = %q, want mass", pe.Name)
	}

	expected := "dynamo: invalid parameter: mass = 0: must be positive"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestSimulationError(t *testing.T) {
	err := &SimulationError{Time: 1.5, Step: 150, Wrapped: ErrInvalidState}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimulationError does not unwrap")
	}
	expected := "step 150 (t=1.5): dynamo: invalid state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
