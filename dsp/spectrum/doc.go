// Package spectrum provides the phase and magnitude analysis used on
// polarization pairs, together with a small FFT amplitude-spectrum helper.
//
// A polarization pair (plus, cross) is treated as the real and imaginary
// parts of one complex signal. [MagnitudeFromParts] and [PhaseFromParts]
// work on the two parts directly without building a []complex128.
// [AmplitudeSpectrum] uses github.com/MeKo-Christian/algo-fft for the
// transform and a Hann window from github.com/mjibson/go-dsp.
package spectrum
