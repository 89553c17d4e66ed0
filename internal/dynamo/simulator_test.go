package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
)

type decay struct{}

func (d *decay) Derive(x State, t float64) State { return State{-x[0]} }
func (d *decay) StateDim() int                   { return 1 }
func (d *decay) Energy(x State) float64          { return x[0] * x[0] }

type forwardEuler struct{}

func (f *forwardEuler) Step(dyn System, x State, t float64, dt float64) State {
	dx := dyn.Derive(x, t)
	return State{x[0] + dt*dx[0]}
}

type blowUp struct{}

func (b *blowUp) Step(dyn System, x State, t float64, dt float64) State {
	return State{math.Inf(1)}
}

func TestSimulatorRun(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})

	result, err := sim.Run(context.Background(), State{1.0}, Config{Dt: 0.1, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps taken, got %d", result.StepsTaken)
	}

	for i, tm := range result.Times {
		if tm != float64(i)*0.1 {
			t.Fatalf("time %d = %v, want %v", i, tm, float64(i)*0.1)
		}
	}

	finalState := result.States[len(result.States)-1][0]
	expected := math.Exp(-1.0)
	if math.Abs(finalState-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, finalState)
	}
	if result.EnergyDrift <= 0 {
		t.Error("expected non-zero energy drift for a decaying system")
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Steps: 10}},
		{"negative dt", Config{Dt: -0.1, Steps: 10}},
		{"nan dt", Config{Dt: math.NaN(), Steps: 10}},
		{"inf dt", Config{Dt: math.Inf(1), Steps: 10}},
		{"zero steps", Config{Dt: 0.1, Steps: 0}},
		{"negative steps", Config{Dt: 0.1, Steps: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), State{1.0}, tt.cfg)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})
	_, err := sim.Run(context.Background(), State{1, 2}, Config{Dt: 0.1, Steps: 1})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorHalt(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})

	cfg := Config{Dt: 0.1, Steps: 100, Halt: func(x State) bool { return x[0] < 0.5 }}
	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !result.Halted {
		t.Fatal("expected run to halt")
	}
	last := result.States[len(result.States)-1][0]
	if last >= 0.5 {
		t.Errorf("halting state should be kept, got %v", last)
	}
	if prev := result.States[len(result.States)-2][0]; prev < 0.5 {
		t.Errorf("run continued past halt: previous state %v", prev)
	}
}

func TestSimulatorInvalidState(t *testing.T) {
	sim := New(&decay{}, &blowUp{})

	_, err := sim.Run(context.Background(), State{1.0}, Config{Dt: 0.1, Steps: 5, ValidateState: true})
	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected *SimulationError, got %v", err)
	}
	if simErr.Step != 1 {
		t.Errorf("expected failure at step 1, got %d", simErr.Step)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("expected ErrInvalidState")
	}
}

func TestSimulatorCanceled(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sim.Run(ctx, State{1.0}, Config{Dt: 0.1, Steps: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state, got %d", len(result.States))
	}
}

type countMetric struct {
	count int
	sum   float64
}

func (c *countMetric) Name() string { return "test" }
func (c *countMetric) Observe(x State, t float64) {
	c.count++
	c.sum += x[0]
}
func (c *countMetric) Value() float64 {
	if c.count == 0 {
		return 0
	}
	return c.sum / float64(c.count)
}
func (c *countMetric) Reset() {
	c.count = 0
	c.sum = 0
}

func TestSimulatorMetrics(t *testing.T) {
	sim := New(&decay{}, &forwardEuler{})

	metric := &countMetric{}
	sim.AddMetric(metric)

	result, err := sim.Run(context.Background(), State{1.0}, Config{Dt: 0.1, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}

	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
}
