package echo

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-echo/dsp/spectrum"
	"github.com/cwbudde/algo-echo/internal/testutil"
)

const (
	testRate = 4096.0
	testDt   = 1 / testRate
)

// phasedTone returns a circular tone whose samples are never exactly zero.
func phasedTone(freqHz float64, n int) (plus, cross []float64) {
	plus = make([]float64, n)
	cross = make([]float64, n)
	step := 2 * math.Pi * freqHz / testRate
	for i := range plus {
		s, c := math.Sincos(step*float64(i) + 0.3)
		plus[i] = c
		cross[i] = s
	}
	return plus, cross
}

func TestAngularFrequencyConstantTone(t *testing.T) {
	const f = 120.0
	hp, hc := phasedTone(f, 256)

	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	if len(est.Omega) != len(hp) {
		t.Fatalf("len = %d, want %d", len(est.Omega), len(hp))
	}
	if est.Start != 0 || est.End != len(hp) || len(est.Warnings) != 0 {
		t.Fatalf("unexpected span/warnings: start=%d end=%d warnings=%v", est.Start, est.End, est.Warnings)
	}
	for _, w := range est.Omega {
		testutil.RequireNearlyEqual(t, "omega", w, 2*math.Pi*f, 1e-6)
	}
}

func TestAngularFrequencyHandedness(t *testing.T) {
	// plus=sin, cross=cos rotates clockwise: the estimate is negative.
	hp, hc := testutil.SinCosPair(100, testRate, 1, 128)
	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	for i := 2; i < len(est.Omega); i++ {
		testutil.RequireNearlyEqual(t, "omega", est.Omega[i], -2*math.Pi*100, 1e-6)
	}
}

func TestAngularFrequencyNoPaddingMatchesRawEstimate(t *testing.T) {
	hp, hc := testutil.GaussianPulsePair(80, testRate, 300, 150, 40)
	hc[0] = 1e-3 // avoid an exact zero at the start of cross

	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	raw, err := spectrum.InstantaneousFrequency(hp, hc, testDt)
	if err != nil {
		t.Fatalf("InstantaneousFrequency() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, est.Omega, raw, 0)
}

func TestAngularFrequencySymmetricPadding(t *testing.T) {
	const lead, trail = 7, 5
	tone, toneCross := phasedTone(90, 200)
	hp := testutil.Pad(tone, lead, trail)
	hc := testutil.Pad(toneCross, lead, trail)
	n := len(hp)

	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	if len(est.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", est.Warnings)
	}
	if est.Start != lead || est.End != n-trail {
		t.Fatalf("span = [%d, %d), want [%d, %d)", est.Start, est.End, lead, n-trail)
	}
	if est.LeadingPlus != lead || est.LeadingCross != lead {
		t.Fatalf("leading = (%d, %d), want (%d, %d)", est.LeadingPlus, est.LeadingCross, lead, lead)
	}
	for i := 0; i < lead; i++ {
		if est.Omega[i] != est.Omega[lead] {
			t.Fatalf("omega[%d] = %v, want omega[%d] = %v", i, est.Omega[i], lead, est.Omega[lead])
		}
	}
	for i := n - trail; i < n; i++ {
		if est.Omega[i] != est.Omega[n-trail-1] {
			t.Fatalf("omega[%d] = %v, want held value %v", i, est.Omega[i], est.Omega[n-trail-1])
		}
	}

	inner, err := spectrum.InstantaneousFrequency(tone, toneCross, testDt)
	if err != nil {
		t.Fatalf("InstantaneousFrequency() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, est.Omega[lead:n-trail], inner, 0)
}

func TestAngularFrequencyUnequalLeadingZeros(t *testing.T) {
	tone, toneCross := phasedTone(90, 200)
	hp := testutil.Pad(tone, 5, 0)
	hc := testutil.Pad(toneCross, 3, 2)

	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	if len(est.Warnings) != 1 || est.Warnings[0].Kind != WarningUnequalLeadingZeros {
		t.Fatalf("warnings = %v, want one %v", est.Warnings, WarningUnequalLeadingZeros)
	}
	if est.LeadingPlus != 5 || est.LeadingCross != 3 || est.Start != 5 {
		t.Fatalf("leading = (%d, %d) start=%d, want (5, 3) start=5", est.LeadingPlus, est.LeadingCross, est.Start)
	}
	if est.End != len(hp)-2 {
		t.Fatalf("end = %d, want %d", est.End, len(hp)-2)
	}
	for i := 0; i < 5; i++ {
		if est.Omega[i] != est.Omega[5] {
			t.Fatalf("omega[%d] = %v, want %v", i, est.Omega[i], est.Omega[5])
		}
	}
	testutil.RequireFinite(t, est.Omega)
}

func TestAngularFrequencyOneChannelStartsWithZero(t *testing.T) {
	hp, hc := testutil.SinCosPair(100, testRate, 1, 64)
	est, err := AngularFrequency(series.New(hp, testDt, 0), series.New(hc, testDt, 0))
	if err != nil {
		t.Fatalf("AngularFrequency() error = %v", err)
	}
	if est.LeadingPlus != 1 || est.LeadingCross != 0 || est.Start != 1 {
		t.Fatalf("leading = (%d, %d) start=%d, want (1, 0) start=1", est.LeadingPlus, est.LeadingCross, est.Start)
	}
	if len(est.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", est.Warnings)
	}
	if est.Omega[0] != est.Omega[1] {
		t.Fatalf("omega[0] = %v, want %v", est.Omega[0], est.Omega[1])
	}
}

func TestAngularFrequencyDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		plus  []float64
		cross []float64
	}{
		{name: "all zero", plus: []float64{0, 0, 0, 0}, cross: []float64{0, 0, 0, 0}},
		{name: "cross all zero", plus: []float64{1, 2, 3, 4}, cross: []float64{0, 0, 0, 0}},
		{name: "single sample span", plus: []float64{0, 1, 0, 0}, cross: []float64{0, 1, 0, 0}},
		{name: "disjoint support", plus: []float64{1, 1, 0, 0}, cross: []float64{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AngularFrequency(series.New(tt.plus, testDt, 0), series.New(tt.cross, testDt, 0))
			if !errors.Is(err, ErrDegenerateInput) {
				t.Fatalf("error = %v, want %v", err, ErrDegenerateInput)
			}
		})
	}
}
