// Package series provides a minimal uniformly sampled time-series container
// and the zero-run searches used to detect padding around a waveform.
//
// A [TimeSeries] pairs a sample slice with its spacing (DeltaT, seconds) and
// the time of its first sample (Epoch, seconds). A valid series is
// non-empty, has a positive spacing and holds only finite samples. Functions
// in this package never mutate their inputs.
package series
