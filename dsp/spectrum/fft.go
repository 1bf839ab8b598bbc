package spectrum

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/window"
)

// AmplitudeSpectrum returns the one-sided amplitude spectrum of x sampled at
// spacing dt, together with the bin center frequencies in Hz.
//
// x is Hann-windowed and zero-padded to the next power of two. Amplitudes are
// normalized by the window's coherent gain so a full-scale tone that falls on
// a bin reads close to its peak amplitude.
func AmplitudeSpectrum(x []float64, dt float64) (freqs, amps []float64, err error) {
	if len(x) < 2 {
		return nil, nil, fmt.Errorf("%w: %d", errTooShort, len(x))
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, nil, fmt.Errorf("spectrum sample spacing must be > 0: %v", dt)
	}

	fftSize := nextPowerOfTwo(len(x))
	coeffs := window.Hann(len(x))

	gain := 0.0
	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v*coeffs[i], 0)
		gain += coeffs[i]
	}
	if gain == 0 {
		gain = 1
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum fft: %w", err)
	}

	bins := fftSize/2 + 1
	mag := Magnitude(out[:bins])
	freqs = make([]float64, bins)
	df := 1 / (float64(fftSize) * dt)
	for k := range mag {
		freqs[k] = float64(k) * df
		scale := 2 / gain
		if k == 0 || k == fftSize/2 {
			scale = 1 / gain
		}
		mag[k] *= scale
	}

	return freqs, mag, nil
}

// PeakFrequency returns the frequency in Hz of the strongest non-DC bin of
// the amplitude spectrum of x, and that bin's amplitude.
func PeakFrequency(x []float64, dt float64) (freq, amp float64, err error) {
	freqs, amps, err := AmplitudeSpectrum(x, dt)
	if err != nil {
		return 0, 0, err
	}
	best := 1
	for k := 2; k < len(amps); k++ {
		if amps[k] > amps[best] {
			best = k
		}
	}
	return freqs[best], amps[best], nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
