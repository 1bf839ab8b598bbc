package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/series"
)

// ChirpParams describes a toy inspiral-merger-ringdown signal.
//
// Before the merger the frequency sweeps from StartHz to PeakHz with a cubic
// law and the amplitude grows as (f/PeakHz)^(2/3). After the merger the
// frequency stays at PeakHz and the amplitude decays with time constant
// RingdownTau.
type ChirpParams struct {
	StartHz     float64
	PeakHz      float64
	Amplitude   float64
	MergerAt    float64 // seconds after the first sample
	RingdownTau float64 // seconds
}

func (p ChirpParams) validate() error {
	if !core.AllFinite(p.StartHz, p.PeakHz, p.Amplitude, p.MergerAt, p.RingdownTau) {
		return fmt.Errorf("chirp parameters must be finite: %+v", p)
	}
	if p.StartHz <= 0 || p.PeakHz < p.StartHz {
		return fmt.Errorf("chirp frequencies must satisfy 0 < start <= peak: %g, %g", p.StartHz, p.PeakHz)
	}
	if p.MergerAt <= 0 {
		return fmt.Errorf("chirp merger time must be > 0: %g", p.MergerAt)
	}
	if p.RingdownTau <= 0 {
		return fmt.Errorf("chirp ringdown tau must be > 0: %g", p.RingdownTau)
	}
	return nil
}

// Chirp generates plus = A*cos(phi) and cross = A*sin(phi) for the toy
// signal described by p. The amplitude envelope peaks at the sample nearest
// MergerAt.
func (g *Generator) Chirp(p ChirpParams, samples int) (plus, cross series.TimeSeries, err error) {
	if samples <= 0 {
		return plus, cross, fmt.Errorf("chirp samples must be > 0: %d", samples)
	}
	if err := p.validate(); err != nil {
		return plus, cross, err
	}

	dt := g.cfg.DeltaT()
	hp := make([]float64, samples)
	hc := make([]float64, samples)
	phi := 0.0
	for i := range hp {
		t := float64(i) * dt
		var f, a float64
		if t <= p.MergerAt {
			x := t / p.MergerAt
			f = p.StartHz + (p.PeakHz-p.StartHz)*x*x*x
			a = p.Amplitude * math.Pow(f/p.PeakHz, 2.0/3.0)
		} else {
			f = p.PeakHz
			a = p.Amplitude * math.Exp(-(t-p.MergerAt)/p.RingdownTau)
		}
		s, c := math.Sincos(phi)
		hp[i] = a * c
		hc[i] = a * s
		phi += 2 * math.Pi * f * dt
	}
	return series.FromConfig(hp, g.cfg), series.FromConfig(hc, g.cfg), nil
}
