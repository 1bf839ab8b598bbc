package echo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/core"
)

// maxOutputLen bounds the length of the echo buffers.
const maxOutputLen = math.MaxInt32

// Params configures the echo train. Times are in seconds.
type Params struct {
	// T0Trunc is the taper center relative to the merger time, usually
	// negative.
	T0Trunc float64
	// TEcho is the delay of the first echo. Must be >= 0.
	TEcho float64
	// DelTEcho is the spacing between consecutive echoes. Must be >= 0.
	DelTEcho float64
	// NEchoes is the number of echoes. Must be >= 1.
	NEchoes int
	// Amplitude scales the first echo relative to the tapered input.
	Amplitude float64
	// Gamma is the damping ratio between consecutive echoes, usually in (0, 1].
	Gamma float64
}

// Validate reports whether p can drive a synthesis.
func (p Params) Validate() error {
	if !core.AllFinite(p.T0Trunc, p.TEcho, p.DelTEcho, p.Amplitude, p.Gamma) {
		return fmt.Errorf("%w: parameters must be finite: %+v", ErrInvalidParameter, p)
	}
	if p.NEchoes < 1 || p.NEchoes > maxOutputLen {
		return fmt.Errorf("%w: n_echoes must be in [1, %d]: %d", ErrInvalidParameter, maxOutputLen, p.NEchoes)
	}
	if p.TEcho < 0 {
		return fmt.Errorf("%w: t_echo must be >= 0: %g", ErrInvalidParameter, p.TEcho)
	}
	if p.DelTEcho < 0 {
		return fmt.Errorf("%w: del_t_echo must be >= 0: %g", ErrInvalidParameter, p.DelTEcho)
	}
	return nil
}

// ExtraSamples returns ceil((TEcho + NEchoes*DelTEcho)/timestep), the number
// of samples the output grows by relative to the input. The result is only
// meaningful once [Params.OutputLen] has accepted p and timestep.
func (p Params) ExtraSamples(timestep float64) int {
	return int(p.extraSamples(timestep))
}

func (p Params) extraSamples(timestep float64) float64 {
	return math.Ceil((p.TEcho + float64(p.NEchoes)*p.DelTEcho) / timestep)
}

// OutputLen returns seedLen + ExtraSamples(timestep), the length of the
// echo buffers. It fails with [ErrInvalidParameter] when that length is not
// finite or exceeds math.MaxInt32 samples.
func (p Params) OutputLen(seedLen int, timestep float64) (int, error) {
	extra := p.extraSamples(timestep)
	if !core.IsFinite(extra) || extra < 0 || float64(seedLen)+extra > maxOutputLen {
		return 0, fmt.Errorf("%w: %d input samples plus %g echo samples exceed %d",
			ErrInvalidParameter, seedLen, extra, maxOutputLen)
	}
	return seedLen + int(extra), nil
}

// Offset returns the sample offset of echo j: the delay
// TEcho + j*DelTEcho in units of timestep, rounded half to even.
func (p Params) Offset(j int, timestep float64) int {
	return int(math.RoundToEven((p.TEcho + p.DelTEcho*float64(j)) / timestep))
}

// Scale returns the gain of echo j: Amplitude * Gamma^j * (-1)^(j+1).
// The first echo is always inverted.
func (p Params) Scale(j int) float64 {
	sign := -1.0
	if j%2 == 1 {
		sign = 1
	}
	return p.Amplitude * math.Pow(p.Gamma, float64(j)) * sign
}

func validateTimestep(timestep float64) error {
	if !(timestep > 0) || !core.IsFinite(timestep) {
		return fmt.Errorf("%w: timestep must be > 0: %g", ErrInvalidParameter, timestep)
	}
	return nil
}
