// Package signal generates deterministic polarization pairs for exercising
// waveform post-processing: circular sinusoids, a toy chirp with a ringdown
// tail, and helpers that zero-pad or rescale a pair.
package signal
