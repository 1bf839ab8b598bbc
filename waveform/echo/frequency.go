package echo

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-echo/dsp/spectrum"
)

// FrequencyEstimate is the per-sample angular frequency of a polarization
// pair together with the padding it was corrected for.
type FrequencyEstimate struct {
	// Omega holds one angular frequency in rad/s per input sample.
	Omega []float64
	// Start and End bound the span [Start, End) the phase derivative was
	// computed on. Samples before Start hold Omega[Start]; samples from End
	// on hold Omega[End-1].
	Start, End int
	// LeadingPlus and LeadingCross are the leading zero-run lengths.
	LeadingPlus, LeadingCross int
	Warnings                  []Warning
}

// AngularFrequency estimates w(t) = d/dt unwrap(atan2(cross, plus)) for
// every sample of the pair.
//
// Leading and trailing exact-zero runs are excluded from the derivative.
// The estimation span starts after the longer of the two leading runs and
// ends before the longer of the two trailing runs. When the leading runs
// differ a [WarningUnequalLeadingZeros] is recorded. When neither channel
// starts with zero no leading correction is applied.
func AngularFrequency(plus, cross series.TimeSeries) (FrequencyEstimate, error) {
	if err := series.ValidatePair(plus, cross); err != nil {
		return FrequencyEstimate{}, err
	}

	leadPlus, okPlus := series.LeadingZeros(plus.Data)
	leadCross, okCross := series.LeadingZeros(cross.Data)
	if !okPlus || !okCross {
		return FrequencyEstimate{}, fmt.Errorf("%w: all-zero polarization (plus=%v cross=%v)",
			ErrDegenerateInput, !okPlus, !okCross)
	}
	trailPlus, _ := series.TrailingZeros(plus.Data)
	trailCross, _ := series.TrailingZeros(cross.Data)

	n := plus.Len()
	est := FrequencyEstimate{
		Start:        max(leadPlus, leadCross),
		End:          n - max(trailPlus, trailCross),
		LeadingPlus:  leadPlus,
		LeadingCross: leadCross,
	}
	if est.End-est.Start < 2 {
		return FrequencyEstimate{}, fmt.Errorf("%w: %d samples left after trimming zero padding",
			ErrDegenerateInput, max(est.End-est.Start, 0))
	}

	span, err := spectrum.InstantaneousFrequency(
		plus.Data[est.Start:est.End], cross.Data[est.Start:est.End], plus.DeltaT)
	if err != nil {
		return FrequencyEstimate{}, err
	}

	est.Omega = make([]float64, n)
	if leadPlus != 0 || leadCross != 0 {
		if leadPlus != leadCross {
			est.Warnings = append(est.Warnings, Warning{
				Kind: WarningUnequalLeadingZeros,
				Message: fmt.Sprintf("plus has %d leading zeros, cross has %d; using %d",
					leadPlus, leadCross, est.Start),
			})
		}
		core.Fill(est.Omega[:est.Start], span[0])
	}
	copy(est.Omega[est.Start:], core.ResizeHold(span, n-est.Start))

	return est, nil
}
