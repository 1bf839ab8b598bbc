package series

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/core"
)

// TimeSeries is a uniformly sampled real-valued signal.
type TimeSeries struct {
	Data   []float64
	DeltaT float64
	Epoch  float64
}

// New returns a TimeSeries over data. The slice is not copied.
func New(data []float64, deltaT, epoch float64) TimeSeries {
	return TimeSeries{Data: data, DeltaT: deltaT, Epoch: epoch}
}

// FromConfig returns a TimeSeries over data using the sample rate and epoch
// of cfg.
func FromConfig(data []float64, cfg core.ProcessorConfig) TimeSeries {
	return New(data, cfg.DeltaT(), cfg.Epoch)
}

// Len returns the number of samples.
func (s TimeSeries) Len() int {
	return len(s.Data)
}

// SampleRate returns 1/DeltaT.
func (s TimeSeries) SampleRate() float64 {
	return 1 / s.DeltaT
}

// Duration returns Len()*DeltaT.
func (s TimeSeries) Duration() float64 {
	return float64(len(s.Data)) * s.DeltaT
}

// EndTime returns the time just past the last sample.
func (s TimeSeries) EndTime() float64 {
	return s.Epoch + s.Duration()
}

// TimeAt returns the time of sample i.
func (s TimeSeries) TimeAt(i int) float64 {
	return s.Epoch + float64(i)*s.DeltaT
}

// SampleTimes returns Epoch + i*DeltaT for every sample.
func (s TimeSeries) SampleTimes() []float64 {
	out := make([]float64, len(s.Data))
	for i := range out {
		out[i] = s.TimeAt(i)
	}
	return out
}

// Validate checks that s is non-empty, has a positive finite spacing and
// holds only finite samples.
func (s TimeSeries) Validate() error {
	if len(s.Data) == 0 {
		return ErrEmptyInput
	}
	if !(s.DeltaT > 0) || !core.IsFinite(s.DeltaT) {
		return fmt.Errorf("%w: %v", ErrInvalidSpacing, s.DeltaT)
	}
	for i, v := range s.Data {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: sample %d is %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// ValidatePair checks the invariants of a plus/cross polarization pair:
// both valid, equal length and equal sample spacing.
func ValidatePair(plus, cross TimeSeries) error {
	if err := plus.Validate(); err != nil {
		return fmt.Errorf("plus: %w", err)
	}
	if err := cross.Validate(); err != nil {
		return fmt.Errorf("cross: %w", err)
	}
	if plus.Len() != cross.Len() {
		return fmt.Errorf("%w: plus=%d cross=%d", ErrLengthMismatch, plus.Len(), cross.Len())
	}
	if !core.NearlyEqual(plus.DeltaT, cross.DeltaT, 0) {
		return fmt.Errorf("%w: plus=%g cross=%g", ErrSpacingMismatch, plus.DeltaT, cross.DeltaT)
	}
	return nil
}
