package testutil

import (
	"math"
	"testing"
)

func TestSinCosPair(t *testing.T) {
	plus, cross := SinCosPair(100, 4096, 0.5, 64)
	if len(plus) != 64 || len(cross) != 64 {
		t.Fatalf("len = (%d, %d), want 64", len(plus), len(cross))
	}
	if plus[0] != 0 || cross[0] != 0.5 {
		t.Fatalf("first samples = (%v, %v), want (0, 0.5)", plus[0], cross[0])
	}
	for i := range plus {
		if r := math.Hypot(plus[i], cross[i]); math.Abs(r-0.5) > 1e-12 {
			t.Fatalf("|h|[%d] = %v, want 0.5", i, r)
		}
	}
}

func TestGaussianPulsePairPeak(t *testing.T) {
	plus, cross := GaussianPulsePair(50, 1024, 101, 40, 8)
	best := -1.0
	bestIdx := -1
	for i := range plus {
		if r := math.Hypot(plus[i], cross[i]); r > best {
			best, bestIdx = r, i
		}
	}
	if bestIdx != 40 {
		t.Fatalf("peak index = %d, want 40", bestIdx)
	}
	if math.Abs(best-1) > 1e-12 {
		t.Fatalf("peak = %v, want 1", best)
	}
}

func TestPad(t *testing.T) {
	got := Pad([]float64{1, 2}, 2, 1)
	want := []float64{0, 0, 1, 2, 0}
	RequireSliceNearlyEqual(t, got, want, 0)
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	if len(imp) != 8 {
		t.Fatalf("len = %d, want 8", len(imp))
	}
	for i, v := range imp {
		if i == 3 {
			if v != 1 {
				t.Fatalf("imp[3] = %v, want 1", v)
			}
		} else if v != 0 {
			t.Fatalf("imp[%d] = %v, want 0", i, v)
		}
	}
}

func TestImpulseOutOfBounds(t *testing.T) {
	imp := Impulse(4, 10)
	for i, v := range imp {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
