package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-vecmath"
)

// Generator creates deterministic signals on a shared sampling grid.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SinusoidPair generates plus = A*sin(2*pi*f*t) and cross = A*cos(2*pi*f*t)
// with t measured from the first sample.
func (g *Generator) SinusoidPair(freqHz, amplitude float64, samples int) (plus, cross series.TimeSeries, err error) {
	if samples <= 0 {
		return plus, cross, fmt.Errorf("sinusoid samples must be > 0: %d", samples)
	}
	hp := make([]float64, samples)
	hc := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range hp {
		s, c := math.Sincos(step * float64(i))
		hp[i] = amplitude * s
		hc[i] = amplitude * c
	}
	return series.FromConfig(hp, g.cfg), series.FromConfig(hc, g.cfg), nil
}

// NormalizePair scales plus and cross by one common factor so the largest
// absolute sample of either channel equals targetPeak. It returns new series;
// an all-zero pair stays zero.
func NormalizePair(plus, cross series.TimeSeries, targetPeak float64) (series.TimeSeries, series.TimeSeries, error) {
	if targetPeak < 0 {
		return plus, cross, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if plus.Len() == 0 || cross.Len() == 0 {
		return plus, cross, fmt.Errorf("normalize input must not be empty")
	}

	hp := make([]float64, plus.Len())
	hc := make([]float64, cross.Len())

	peak := math.Max(vecmath.MaxAbs(plus.Data), vecmath.MaxAbs(cross.Data))
	if peak != 0 && targetPeak != 0 {
		gain := targetPeak / peak
		vecmath.ScaleBlock(hp, plus.Data, gain)
		vecmath.ScaleBlock(hc, cross.Data, gain)
	}

	return series.New(hp, plus.DeltaT, plus.Epoch), series.New(hc, cross.DeltaT, cross.Epoch), nil
}

// ZeroPad returns a copy of s with before zero samples prepended and after
// zero samples appended. The epoch moves back by before*DeltaT so the
// original samples keep their times.
func ZeroPad(s series.TimeSeries, before, after int) (series.TimeSeries, error) {
	if before < 0 || after < 0 {
		return series.TimeSeries{}, fmt.Errorf("zero pad lengths must be >= 0: %d, %d", before, after)
	}
	data := make([]float64, before+s.Len()+after)
	copy(data[before:], s.Data)
	return series.New(data, s.DeltaT, s.Epoch-float64(before)*s.DeltaT), nil
}
