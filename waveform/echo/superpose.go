package echo

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-vecmath"
)

// Train is the superposed echo train for both polarizations.
type Train struct {
	Plus, Cross []float64
	// Offsets and Scales hold the start sample and gain of each echo.
	Offsets []int
	Scales  []float64
}

// Superpose accumulates p.NEchoes copies of the seed into zeroed buffers of
// length p.OutputLen(len(seed), timestep). Echo j starts at
// p.Offset(j, timestep) and is scaled by p.Scale(j). Overlapping echoes add.
func Superpose(seedPlus, seedCross []float64, p Params, timestep float64) (Train, error) {
	if err := p.Validate(); err != nil {
		return Train{}, err
	}
	if err := validateTimestep(timestep); err != nil {
		return Train{}, err
	}
	if len(seedPlus) != len(seedCross) {
		return Train{}, fmt.Errorf("%w: plus=%d cross=%d", series.ErrLengthMismatch, len(seedPlus), len(seedCross))
	}

	seedLen := len(seedPlus)
	n, err := p.OutputLen(seedLen, timestep)
	if err != nil {
		return Train{}, err
	}
	train := Train{
		Plus:    make([]float64, n),
		Cross:   make([]float64, n),
		Offsets: make([]int, p.NEchoes),
		Scales:  make([]float64, p.NEchoes),
	}

	scratch := make([]float64, seedLen)
	for j := 0; j < p.NEchoes; j++ {
		offset := p.Offset(j, timestep)
		if offset < 0 || offset+seedLen > n {
			return Train{}, fmt.Errorf("%w: echo %d spans [%d, %d) of %d samples",
				ErrBufferOverrun, j, offset, offset+seedLen, n)
		}
		scale := p.Scale(j)
		train.Offsets[j] = offset
		train.Scales[j] = scale

		accumulate(train.Plus[offset:offset+seedLen], seedPlus, scale, scratch)
		accumulate(train.Cross[offset:offset+seedLen], seedCross, scale, scratch)
	}

	return train, nil
}

// accumulate adds scale*src into dst elementwise. scratch must be as long
// as src.
func accumulate(dst, src []float64, scale float64, scratch []float64) {
	if len(src) == 0 {
		return
	}
	vecmath.ScaleBlock(scratch, src, scale)
	vecmath.AddBlockInPlace(dst, scratch)
}
