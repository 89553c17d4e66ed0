package plot

import "math"

type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Pad widens each side by frac of its span. Degenerate spans grow to one
// unit so a straight or empty line still gets an axis.
func (b Bounds) Pad(frac float64) Bounds {
	if b.Width() == 0 {
		b.MinX, b.MaxX = b.MinX-0.5, b.MaxX+0.5
	}
	if b.Height() == 0 {
		b.MinY, b.MaxY = b.MinY-0.5, b.MaxY+0.5
	}
	dx, dy := b.Width()*frac, b.Height()*frac
	return Bounds{b.MinX - dx, b.MaxX + dx, b.MinY - dy, b.MaxY + dy}
}

// Aspect grows the shorter span around its centre so that Width/Height
// equals ratio. Drawn into an area with that width/height ratio, one unit
// has the same length on both axes.
func (b Bounds) Aspect(ratio float64) Bounds {
	if !(ratio > 0) || math.IsInf(ratio, 0) || !(b.Width() > 0) || !(b.Height() > 0) {
		return b
	}
	w, h := b.Width(), b.Height()
	if w/h < ratio {
		w = h * ratio
	} else {
		h = w / ratio
	}
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	return Bounds{cx - w/2, cx + w/2, cy - h/2, cy + h/2}
}

// StepTicks places a tick at every multiple of step inside [lo, hi].
// It returns nil when step or the range is unusable, or fewer than two
// ticks land.
func StepTicks(lo, hi, step float64) []float64 {
	if !finite(lo) || !finite(hi) || !(step > 0) || !finite(step) || hi < lo || (hi-lo)/step > 100 {
		return nil
	}
	first := math.Ceil(lo/step - 1e-9)
	n := int((hi-lo)/step) + 2
	var ticks []float64
	for i := 0; i < n; i++ {
		v := (first + float64(i)) * step
		if v > hi+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	if len(ticks) < 2 {
		return nil
	}
	return ticks
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
