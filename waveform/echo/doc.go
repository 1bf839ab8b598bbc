// Package echo appends a train of post-merger echoes to a gravitational-wave
// polarization pair.
//
// The synthesis runs in four stages:
//
//   - [MergerTime] locates the sample of peak |plus + i*cross|.
//   - [AngularFrequency] estimates the instantaneous angular frequency from
//     the polarization phase, holding the first and last estimated value
//     across leading and trailing zero padding.
//   - [TaperCoefficients] builds the frequency-adaptive tanh window
//     0.5*(1 + tanh(0.5*|w(t)|*(t - tMerger - T0Trunc))) and [ApplyTaper]
//     turns the input into the echo seed.
//   - [Superpose] accumulates NEchoes delayed copies of the seed, the j-th
//     scaled by Amplitude * Gamma^j * (-1)^(j+1), into an extended buffer.
//
// [AddEchoes] runs the whole pipeline. The returned series contain the echo
// train only and carry the input's first sample time as their epoch, so
// their timestamps are relative, not absolute.
//
// All functions are pure apart from optional logging; independent calls may
// run concurrently.
package echo
