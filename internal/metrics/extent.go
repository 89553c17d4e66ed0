package metrics

import (
	"math"

	"github.com/san-kum/magtraj/internal/dynamo"
)

// MaxExtent is the largest distance from the origin reached by the particle.
type MaxExtent struct {
	name string
	max  float64
}

func NewMaxExtent() *MaxExtent {
	return &MaxExtent{name: "max_extent"}
}

func (m *MaxExtent) Name() string { return m.name }

func (m *MaxExtent) Observe(x dynamo.State, t float64) {
	if len(x) < 3 {
		return
	}
	m.max = math.Max(m.max, x.Vec3At(0).Norm())
}

func (m *MaxExtent) Value() float64 { return m.max }

func (m *MaxExtent) Reset() { m.max = 0 }

// Defaults returns fresh instances of every trajectory metric.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{NewSpeedDrift(), NewMaxExtent()}
}
