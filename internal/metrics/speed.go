package metrics

import (
	"math"

	"github.com/san-kum/magtraj/internal/dynamo"
)

// SpeedDrift tracks the largest relative deviation of |v| from the first
// observed speed. A magnetic field does no work, so any drift is
// integration error.
type SpeedDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewSpeedDrift() *SpeedDrift {
	return &SpeedDrift{name: "speed_drift"}
}

func (s *SpeedDrift) Name() string { return s.name }

func (s *SpeedDrift) Observe(x dynamo.State, t float64) {
	if len(x) < 6 {
		return
	}
	_, v := dynamo.SplitPhase(x)
	speed := v.Norm()

	if s.samples == 0 {
		s.initial = speed
	}
	s.samples++

	if s.initial != 0 {
		s.maxDrift = math.Max(s.maxDrift, math.Abs(speed-s.initial)/s.initial)
	}
}

func (s *SpeedDrift) Value() float64 { return s.maxDrift }

func (s *SpeedDrift) Reset() {
	s.initial = 0
	s.maxDrift = 0
	s.samples = 0
}
