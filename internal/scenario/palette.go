package scenario

import "github.com/lucasb-eyer/go-colorful"

// Anchors of the viridis colour map at 0, 0.2, ..., 1.
var viridis = []string{"#440154", "#414487", "#2a788e", "#22a884", "#7ad151", "#fde725"}

// Viridis returns n colours evenly spaced over the first 80% of the
// viridis map, so the last line stays readable on white.
func Viridis(n int) []string {
	out := make([]string, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = 0.8 * float64(i) / float64(n-1)
		}
		out[i] = viridisAt(t)
	}
	return out
}

func viridisAt(t float64) string {
	pos := t * float64(len(viridis)-1)
	i := int(pos)
	if i >= len(viridis)-1 {
		return viridis[len(viridis)-1]
	}
	frac := pos - float64(i)
	if frac < 1e-9 {
		return viridis[i]
	}
	if frac > 1-1e-9 {
		return viridis[i+1]
	}
	a, _ := colorful.Hex(viridis[i])
	b, _ := colorful.Hex(viridis[i+1])
	return a.BlendLab(b, frac).Clamped().Hex()
}
