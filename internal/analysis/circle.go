package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrTooFewPoints = errors.New("analysis: not enough points")
	ErrCollinear    = errors.New("analysis: points are collinear")
)

const collinearTolerance = 1e-12

type Circle struct {
	CX, CY, R float64
}

// FitCircle finds the algebraic (Kåsa) least-squares circle
// x² + y² + D·x + E·y + F = 0 through the points. Coordinates are centred
// and scaled before solving so metre-sized and micron-sized paths
// condition alike.
func FitCircle(xs, ys []float64) (Circle, error) {
	n := len(xs)
	if n != len(ys) {
		return Circle{}, fmt.Errorf("analysis: %d x values but %d y values", n, len(ys))
	}
	if n < 3 {
		return Circle{}, ErrTooFewPoints
	}

	mx, my := mean(xs), mean(ys)
	scale := 0.0
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		scale += dx*dx + dy*dy
	}
	scale = math.Sqrt(scale / float64(n))
	if scale == 0 {
		return Circle{}, ErrCollinear
	}

	// A vanishing covariance determinant means the points lie on a line.
	var sxx, syy, sxy float64
	for i := range xs {
		u, v := (xs[i]-mx)/scale, (ys[i]-my)/scale
		sxx += u * u
		syy += v * v
		sxy += u * v
	}
	if det := sxx*syy - sxy*sxy; det <= collinearTolerance*(sxx+syy)*(sxx+syy) {
		return Circle{}, ErrCollinear
	}

	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i := range xs {
		u, v := (xs[i]-mx)/scale, (ys[i]-my)/scale
		a.Set(i, 0, u)
		a.Set(i, 1, v)
		a.Set(i, 2, 1)
		b.SetVec(i, -(u*u + v*v))
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return Circle{}, fmt.Errorf("%w: %v", ErrCollinear, err)
	}

	cu, cv := -sol.AtVec(0)/2, -sol.AtVec(1)/2
	r2 := cu*cu + cv*cv - sol.AtVec(2)
	if !(r2 > 0) || math.IsInf(r2, 0) {
		return Circle{}, ErrCollinear
	}

	return Circle{
		CX: mx + cu*scale,
		CY: my + cv*scale,
		R:  math.Sqrt(r2) * scale,
	}, nil
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
