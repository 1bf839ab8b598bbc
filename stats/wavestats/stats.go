// Package wavestats summarises a plus/cross polarization pair in the time
// domain.
package wavestats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain statistics of a polarization pair. Amplitudes
// refer to the complex strain |plus + i*cross|.
//
//nolint:revive
type Stats struct {
	Length    int
	Duration  float64
	Peak      float64
	Peak_dB   float64
	PeakIndex int
	PeakTime  float64
	RMS       float64
	RMS_dB    float64
	// Energy is the sum of |h|^2 times DeltaT.
	Energy float64
	// SupportStart and SupportEnd bound the non-zero samples, [start, end).
	// Both are zero for an all-zero pair.
	SupportStart  int
	SupportEnd    int
	ZeroCrossings int // of the plus channel
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes the statistics of a validated pair.
func Calculate(plus, cross series.TimeSeries) (Stats, error) {
	if err := series.ValidatePair(plus, cross); err != nil {
		return Stats{}, err
	}

	n := plus.Len()
	mag := make([]float64, n)
	vecmath.Magnitude(mag, plus.Data, cross.Data)

	peakIdx := floats.MaxIdx(mag)
	peak := mag[peakIdx]

	sumSq := floats.Dot(plus.Data, plus.Data) + floats.Dot(cross.Data, cross.Data)
	rms := math.Sqrt(sumSq / float64(n))

	s := Stats{
		Length:        n,
		Duration:      plus.Duration(),
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		PeakIndex:     peakIdx,
		PeakTime:      plus.TimeAt(peakIdx),
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Energy:        sumSq * plus.DeltaT,
		ZeroCrossings: ZeroCrossings(plus.Data),
	}

	if first, ok := series.FirstNonZero(mag); ok {
		last, _ := series.LastNonZero(mag)
		s.SupportStart, s.SupportEnd = first, last+1
	}

	return s, nil
}

// EnergyRatio returns out.Energy / in.Energy, or 0 when in carries no energy.
func EnergyRatio(out, in Stats) float64 {
	if in.Energy == 0 {
		return 0
	}

	return out.Energy / in.Energy
}

// ZeroCrossings returns the number of sign changes in the signal. Exact
// zeros neither start nor end a crossing.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
