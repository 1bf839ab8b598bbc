package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

var (
	errLengthMismatch = errors.New("spectrum input length mismatch")
	errTooShort       = errors.New("spectrum input needs at least 2 samples")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |x[k]| for each complex sample.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have equal length.
func MagnitudeFromParts(dst, re, im []float64) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return fmt.Errorf("%w: dst=%d re=%d im=%d", errLengthMismatch, len(dst), len(re), len(im))
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.Magnitude(dst, re, im)
	return nil
}

// PhaseFromParts returns atan2(im[k], re[k]) for each sample.
func PhaseFromParts(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: re=%d im=%d", errLengthMismatch, len(re), len(im))
	}
	out := make([]float64, len(re))
	for i := range re {
		out[i] = math.Atan2(im[i], re[i])
	}
	return out, nil
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// Gradient returns the derivative of y sampled at spacing dx.
//
// A centered finite difference is used for interior samples, with one-sided
// differences at the endpoints, so the output has the same length as y.
func Gradient(y []float64, dx float64) ([]float64, error) {
	if len(y) < 2 {
		return nil, fmt.Errorf("%w: %d", errTooShort, len(y))
	}
	if !(dx > 0) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("gradient spacing must be > 0: %v", dx)
	}
	out := make([]float64, len(y))
	last := len(y) - 1
	for i := range y {
		switch i {
		case 0:
			out[i] = (y[1] - y[0]) / dx
		case last:
			out[i] = (y[i] - y[i-1]) / dx
		default:
			out[i] = (y[i+1] - y[i-1]) / (2 * dx)
		}
	}
	return out, nil
}

// InstantaneousFrequency returns the angular frequency d(phase)/dt in rad/s
// of the complex signal re + i*im sampled at spacing dt. The output has one
// value per input sample.
func InstantaneousFrequency(re, im []float64, dt float64) ([]float64, error) {
	phase, err := PhaseFromParts(re, im)
	if err != nil {
		return nil, err
	}
	return Gradient(UnwrapPhase(phase), dt)
}
