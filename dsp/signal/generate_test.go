package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/series"
)

func TestSinusoidPairIsCircular(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(4096), core.WithEpoch(2))
	plus, cross, err := g.SinusoidPair(100, 0.5, 128)
	if err != nil {
		t.Fatalf("SinusoidPair() error = %v", err)
	}
	if plus.Epoch != 2 || cross.DeltaT != 1.0/4096 {
		t.Fatalf("unexpected grid: epoch=%v dt=%v", plus.Epoch, cross.DeltaT)
	}
	if plus.Data[0] != 0 || cross.Data[0] != 0.5 {
		t.Fatalf("first samples = (%v, %v), want (0, 0.5)", plus.Data[0], cross.Data[0])
	}
	for i := range plus.Data {
		r := math.Hypot(plus.Data[i], cross.Data[i])
		if math.Abs(r-0.5) > 1e-12 {
			t.Fatalf("|h|[%d] = %v, want 0.5", i, r)
		}
	}
}

func TestSinusoidPairRejectsEmpty(t *testing.T) {
	if _, _, err := NewGenerator().SinusoidPair(100, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestNormalizePair(t *testing.T) {
	plus := series.New([]float64{-0.5, 1.0, -0.25}, 0.5, 3)
	cross := series.New([]float64{0.25, -2.0, 0}, 0.5, 3)

	gotPlus, gotCross, err := NormalizePair(plus, cross, 0.5)
	if err != nil {
		t.Fatalf("NormalizePair() error = %v", err)
	}
	if gotCross.Data[1] != -0.5 || gotPlus.Data[1] != 0.25 {
		t.Fatalf("scaled peaks = (%v, %v), want (0.25, -0.5)", gotPlus.Data[1], gotCross.Data[1])
	}
	if gotPlus.DeltaT != 0.5 || gotCross.Epoch != 3 {
		t.Fatalf("grid changed: dt=%v epoch=%v", gotPlus.DeltaT, gotCross.Epoch)
	}
	if plus.Data[1] != 1.0 {
		t.Fatal("input was modified")
	}

	zero := series.New([]float64{0, 0}, 1, 0)
	zp, zc, err := NormalizePair(zero, zero, 1)
	if err != nil || zp.Data[0] != 0 || zc.Data[1] != 0 {
		t.Fatalf("zero pair = (%v, %v), err = %v", zp.Data, zc.Data, err)
	}

	if _, _, err := NormalizePair(series.TimeSeries{}, cross, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, _, err := NormalizePair(plus, cross, -1); err == nil {
		t.Fatal("expected error for negative target")
	}
}

func TestZeroPad(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(4))
	plus, _, err := g.SinusoidPair(1, 1, 4)
	if err != nil {
		t.Fatalf("SinusoidPair() error = %v", err)
	}

	padded, err := ZeroPad(plus, 2, 3)
	if err != nil {
		t.Fatalf("ZeroPad() error = %v", err)
	}
	if padded.Len() != 9 {
		t.Fatalf("len = %d, want 9", padded.Len())
	}
	if padded.Epoch != -0.5 {
		t.Fatalf("epoch = %v, want -0.5", padded.Epoch)
	}
	for i, v := range plus.Data {
		if padded.Data[i+2] != v {
			t.Fatalf("padded[%d] = %v, want %v", i+2, padded.Data[i+2], v)
		}
	}
	if padded.TimeAt(2) != plus.Epoch {
		t.Fatalf("first original sample moved to %v", padded.TimeAt(2))
	}

	if _, err := ZeroPad(plus, -1, 0); err == nil {
		t.Fatal("expected error for negative padding")
	}
}

func TestChirpPeaksAtMerger(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(4096))
	p := ChirpParams{StartHz: 30, PeakHz: 250, Amplitude: 1, MergerAt: 0.2, RingdownTau: 0.005}

	plus, cross, err := g.Chirp(p, 1024)
	if err != nil {
		t.Fatalf("Chirp() error = %v", err)
	}

	best, bestIdx := 0.0, -1
	for i := range plus.Data {
		r := math.Hypot(plus.Data[i], cross.Data[i])
		if r > best {
			best, bestIdx = r, i
		}
	}
	want := int(math.Round(p.MergerAt * 4096))
	if bestIdx < want-1 || bestIdx > want+1 {
		t.Fatalf("peak index = %d, want about %d", bestIdx, want)
	}
	if math.Abs(best-1) > 1e-3 {
		t.Fatalf("peak amplitude = %v, want ~1", best)
	}
}

func TestChirpValidation(t *testing.T) {
	g := NewGenerator()
	bad := []ChirpParams{
		{StartHz: 0, PeakHz: 100, Amplitude: 1, MergerAt: 0.1, RingdownTau: 0.01},
		{StartHz: 200, PeakHz: 100, Amplitude: 1, MergerAt: 0.1, RingdownTau: 0.01},
		{StartHz: 20, PeakHz: 100, Amplitude: 1, MergerAt: 0, RingdownTau: 0.01},
		{StartHz: 20, PeakHz: 100, Amplitude: 1, MergerAt: 0.1, RingdownTau: 0},
		{StartHz: 20, PeakHz: math.NaN(), Amplitude: 1, MergerAt: 0.1, RingdownTau: 0.01},
	}
	for i, p := range bad {
		if _, _, err := g.Chirp(p, 16); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, p)
		}
	}
}
