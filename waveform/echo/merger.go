package echo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-echo/dsp/spectrum"
)

// MergerTime returns the time and index of the sample where
// |plus + i*cross| is largest. Ties resolve to the lowest index.
func MergerTime(plus, cross series.TimeSeries) (tMerger float64, idx int, err error) {
	if err := series.ValidatePair(plus, cross); err != nil {
		return 0, 0, err
	}

	mag := make([]float64, plus.Len())
	if err := spectrum.MagnitudeFromParts(mag, plus.Data, cross.Data); err != nil {
		return 0, 0, err
	}

	idx = floats.MaxIdx(mag)
	if mag[idx] == 0 {
		return 0, 0, fmt.Errorf("%w: waveform magnitude is zero everywhere", ErrDegenerateInput)
	}
	return plus.TimeAt(idx), idx, nil
}
