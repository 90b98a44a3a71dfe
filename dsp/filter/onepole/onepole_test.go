package onepole

import (
	"testing"

	"github.com/cwbudde/algo-noise/dsp/fixed"
	"github.com/cwbudde/algo-noise/internal/testutil"
)

func TestLowPassDecayIsMonotonicAcrossBlocks(t *testing.T) {
	const n = 64

	continuous, err := NewLowPassAlpha(0.5)
	if err != nil {
		t.Fatal(err)
	}
	continuous.SetState(1000)
	whole := make([]float64, n)
	continuous.ProcessBlock(whole)

	split, _ := NewLowPassAlpha(0.5)
	split.SetState(1000)
	first := make([]float64, n/2)
	second := make([]float64, n/2)
	split.ProcessBlock(first)
	split.ProcessBlock(second)

	testutil.RequireSliceNearlyEqual(t, append(first, second...), whole, 0)

	prev := 1000.0
	for i, y := range whole {
		if y > prev || y < 0 {
			t.Fatalf("sample %d = %v after %v, want monotonic decay toward 0", i, y, prev)
		}
		prev = y
	}
	if whole[0] != 500 {
		t.Fatalf("first output = %v, want 500", whole[0])
	}
}

func TestLowPassFixedDecayIsMonotonicAcrossBlocks(t *testing.T) {
	const n = 64

	for _, start := range []int32{1000, -1000} {
		continuous, err := NewLowPassFixedAlpha(fixed.FromFloat(0.5))
		if err != nil {
			t.Fatal(err)
		}
		continuous.SetState(start)
		whole := make([]int32, n)
		continuous.ProcessBlock(whole)

		split, _ := NewLowPassFixedAlpha(fixed.FromFloat(0.5))
		split.SetState(start)
		first := make([]int32, n/2)
		second := make([]int32, n/2)
		split.ProcessBlock(first)
		split.ProcessBlock(second)

		testutil.RequireInt32Equal(t, append(first, second...), whole)

		prev := start
		for i, y := range whole {
			if abs32(y) > abs32(prev) || (y != 0 && (y < 0) != (start < 0)) {
				t.Fatalf("start %d: sample %d = %d after %d, want monotonic decay", start, i, y, prev)
			}
			prev = y
		}
		if whole[n-1] != 0 {
			t.Fatalf("start %d: final output = %d, want 0", start, whole[n-1])
		}
		if continuous.StateWord() != 0 {
			t.Fatalf("start %d: state word = %d, want 0 after decay", start, continuous.StateWord())
		}
	}
}

func TestLowPassConvergesToDC(t *testing.T) {
	f, err := NewLowPass(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewLowPassFixed(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	var y float64
	var yq int32
	for _, x := range testutil.Constant[int32](1000, 4800) {
		y = f.ProcessSample(float64(x))
		yq = q.ProcessSample(x)
	}

	if y < 999.999 || y > 1000.001 {
		t.Fatalf("float low-pass settled at %v, want 1000", y)
	}
	if yq < 999 || yq > 1000 {
		t.Fatalf("fixed low-pass settled at %d, want 1000 (±1)", yq)
	}
}

func TestHighPassRejectsDC(t *testing.T) {
	f, err := NewHighPass(100, 48000)
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewHighPassFixed(100, 48000)
	if err != nil {
		t.Fatal(err)
	}

	first := f.ProcessSample(1000)
	firstQ := q.ProcessSample(1000)
	if first < 980 || firstQ < 980 {
		t.Fatalf("step response starts at %v / %d, want close to 1000", first, firstQ)
	}

	var y float64
	var yq int32
	for range 48000 {
		y = f.ProcessSample(1000)
		yq = q.ProcessSample(1000)
	}

	if y > 1e-3 || y < -1e-3 {
		t.Fatalf("float high-pass DC residue = %v, want ~0", y)
	}
	if yq != 0 {
		t.Fatalf("fixed high-pass DC residue = %d, want 0", yq)
	}
}

func TestFloatAndFixedTrackEachOther(t *testing.T) {
	lp, _ := NewLowPass(2000, 48000)
	lpq, _ := NewLowPassFixed(2000, 48000)
	hp, _ := NewHighPass(100, 48000)
	hpq, _ := NewHighPassFixed(100, 48000)

	in := testutil.Noise32(7, 30000, 4096)
	for i, xi := range in {
		y := lp.ProcessSample(hp.ProcessSample(float64(xi)))
		yq := lpq.ProcessSample(hpq.ProcessSample(xi))

		if d := y - float64(yq); d > 3 || d < -3 {
			t.Fatalf("sample %d: float %v vs fixed %d", i, y, yq)
		}
	}
}

func TestReset(t *testing.T) {
	lp, _ := NewLowPass(1000, 48000)
	lp.ProcessSample(100)
	lp.Reset()
	if lp.State() != 0 {
		t.Fatalf("State() = %v after Reset", lp.State())
	}

	hp, _ := NewHighPass(1000, 48000)
	hp.ProcessSample(100)
	hp.Reset()
	if got := hp.ProcessSample(0); got != 0 {
		t.Fatalf("high-pass output after Reset = %v, want 0", got)
	}

	lpq, _ := NewLowPassFixed(1000, 48000)
	lpq.ProcessSample(100)
	lpq.Reset()
	if lpq.StateWord() != 0 {
		t.Fatalf("StateWord() = %d after Reset", lpq.StateWord())
	}

	hpq, _ := NewHighPassFixed(1000, 48000)
	hpq.ProcessSample(100)
	hpq.Reset()
	if got := hpq.ProcessSample(0); got != 0 {
		t.Fatalf("fixed high-pass output after Reset = %d, want 0", got)
	}
}

func TestNewAlphaValidation(t *testing.T) {
	for _, a := range []float64{0, 1, -0.5, 2} {
		if _, err := NewLowPassAlpha(a); err == nil {
			t.Fatalf("NewLowPassAlpha(%v) = nil error", a)
		}
	}
	if _, err := NewLowPassFixedAlpha(0); err == nil {
		t.Fatal("NewLowPassFixedAlpha(0) = nil error")
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func BenchmarkLowPassFixed(b *testing.B) {
	f, _ := NewLowPassFixed(1000, 48000)
	buf := make([]int32, 512)
	for b.Loop() {
		f.ProcessBlock(buf)
	}
}
