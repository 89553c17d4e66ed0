package trajectory

import (
	"fmt"
	"strings"

	"github.com/san-kum/magtraj/internal/dynamo"
)

// Plane selects the two coordinates kept when projecting to 2D.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "", "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXY, fmt.Errorf("unknown plane %q (want xy, xz or yz)", s)
}

func (p Plane) pick(v dynamo.Vec3) (float64, float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Project returns the positions on the given plane multiplied by scale
// (100 plots in centimetres).
func (t *Trajectory) Project(plane Plane, scale float64) (xs, ys []float64) {
	xs = make([]float64, len(t.Samples))
	ys = make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		x, y := plane.pick(s.Position)
		xs[i] = x * scale
		ys[i] = y * scale
	}
	return xs, ys
}
