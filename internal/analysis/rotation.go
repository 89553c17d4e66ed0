package analysis

import "math"

type Sense int

const (
	None Sense = iota
	CounterClockwise
	Clockwise
)

func (s Sense) String() string {
	switch s {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "none"
	}
}

// straightTolerance is the turning, relative to path length squared, below
// which a path counts as straight.
const straightTolerance = 1e-9

// Rotation reports the sense in which a planar path turns, from the sum of
// cross products of consecutive displacements.
func Rotation(xs, ys []float64) Sense {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 3 {
		return None
	}

	turn, norm := 0.0, 0.0
	for i := 0; i+2 < n; i++ {
		ax, ay := xs[i+1]-xs[i], ys[i+1]-ys[i]
		bx, by := xs[i+2]-xs[i+1], ys[i+2]-ys[i+1]
		turn += ax*by - ay*bx
		norm += math.Hypot(ax, ay) * math.Hypot(bx, by)
	}

	if norm == 0 || math.Abs(turn) <= straightTolerance*norm {
		return None
	}
	if turn > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// SpeedDrift is the largest relative deviation from speeds[0].
func SpeedDrift(speeds []float64) float64 {
	if len(speeds) == 0 || speeds[0] == 0 {
		return 0
	}
	drift := 0.0
	for _, s := range speeds[1:] {
		drift = math.Max(drift, math.Abs(s-speeds[0])/speeds[0])
	}
	return drift
}
