package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

var ErrNoSignal = errors.New("analysis: series has no oscillating component")

// PowerSpectrum returns |FFT| of the mean-removed series for the
// non-negative frequency bins.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	spec := fft.FFTReal(detrend(series))
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency estimates the strongest frequency (Hz) of a series
// sampled every dt seconds. A Hann window reduces leakage and the peak is
// refined by parabolic interpolation between neighbouring bins.
func DominantFrequency(series []float64, dt float64) (float64, error) {
	n := len(series)
	if n < 4 {
		return 0, ErrTooFewPoints
	}
	if !(dt > 0) {
		return 0, errors.New("analysis: dt must be positive")
	}

	data := detrend(series)
	hann := window.Hann(n)
	for i := range data {
		data[i] *= hann[i]
	}

	spec := fft.FFTReal(data)
	half := n / 2
	mag := make([]float64, half+1)
	for i := range mag {
		mag[i] = cmplx.Abs(spec[i])
	}

	peak := 1
	for k := 2; k <= half; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}
	if mag[peak] == 0 {
		return 0, ErrNoSignal
	}

	offset := 0.0
	if peak > 0 && peak < half {
		l, c, r := mag[peak-1], mag[peak], mag[peak+1]
		if den := l - 2*c + r; den != 0 {
			offset = 0.5 * (l - r) / den
		}
	}

	return (float64(peak) + offset) / (float64(n) * dt), nil
}

func detrend(series []float64) []float64 {
	m := mean(series)
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v - m
	}
	return out
}
