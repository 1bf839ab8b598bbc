package echo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-vecmath"
)

// TaperAt evaluates the echo window at time t for angular frequency omega:
// 0.5*(1 + tanh(0.5*|omega|*(t - tMerger - t0trunc))).
//
// The window rises from 0 to 1 around tMerger + t0trunc. Taking |omega|
// keeps it rising for either polarization handedness.
func TaperAt(t, t0trunc, tMerger, omega float64) float64 {
	return 0.5 * (1 + math.Tanh(0.5*math.Abs(omega)*(t-tMerger-t0trunc)))
}

// TaperCoefficients evaluates [TaperAt] for every sample, each with its own
// angular frequency.
func TaperCoefficients(times []float64, t0trunc, tMerger float64, omega []float64) ([]float64, error) {
	if len(times) != len(omega) {
		return nil, fmt.Errorf("%w: times=%d omega=%d", series.ErrLengthMismatch, len(times), len(omega))
	}
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = TaperAt(t, t0trunc, tMerger, omega[i])
	}
	return out, nil
}

// ApplyTaper multiplies both polarizations by coeffs and returns the
// tapered copies. The inputs are not modified.
func ApplyTaper(plus, cross, coeffs []float64) (seedPlus, seedCross []float64, err error) {
	if len(plus) != len(coeffs) || len(cross) != len(coeffs) {
		return nil, nil, fmt.Errorf("%w: plus=%d cross=%d taper=%d",
			series.ErrLengthMismatch, len(plus), len(cross), len(coeffs))
	}
	seedPlus = make([]float64, len(plus))
	seedCross = make([]float64, len(cross))
	if len(coeffs) == 0 {
		return seedPlus, seedCross, nil
	}
	vecmath.MulBlock(seedPlus, plus, coeffs)
	vecmath.MulBlock(seedCross, cross, coeffs)
	return seedPlus, seedCross, nil
}
