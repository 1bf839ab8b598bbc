package testutil

import "math"

// SinCosPair returns plus = A*sin(2*pi*f*n/fs) and cross = A*cos(2*pi*f*n/fs).
func SinCosPair(freqHz, sampleRate, amplitude float64, length int) (plus, cross []float64) {
	plus = make([]float64, length)
	cross = make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range plus {
		s, c := math.Sincos(step * float64(i))
		plus[i] = amplitude * s
		cross[i] = amplitude * c
	}
	return plus, cross
}

// GaussianPulsePair returns a circularly polarized tone with a Gaussian
// envelope of width sigma samples centered at sample center. The magnitude
// has a single strict maximum at center.
func GaussianPulsePair(freqHz, sampleRate float64, length, center int, sigma float64) (plus, cross []float64) {
	plus = make([]float64, length)
	cross = make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range plus {
		d := float64(i-center) / sigma
		env := math.Exp(-0.5 * d * d)
		s, c := math.Sincos(step * float64(i))
		plus[i] = env * c
		cross[i] = env * s
	}
	return plus, cross
}

// Pad returns x with before zeros prepended and after zeros appended.
func Pad(x []float64, before, after int) []float64 {
	out := make([]float64, before+len(x)+after)
	copy(out[before:], x)
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
