package testutil

import "testing"

func TestNoise32(t *testing.T) {
	a := Noise32(42, 1000, 4096)
	b := Noise32(42, 1000, 4096)
	if len(a) != 4096 {
		t.Fatalf("len = %d, want 4096", len(a))
	}

	var lo, hi int32
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1000 || a[i] > 1000 {
			t.Fatalf("a[%d] = %d out of range", i, a[i])
		}
		lo, hi = min(lo, a[i]), max(hi, a[i])
	}
	if lo > -900 || hi < 900 {
		t.Fatalf("range [%d, %d] does not span the amplitude", lo, hi)
	}
}

func TestNoise32Seeds(t *testing.T) {
	a := Noise32(1, 1000, 16)
	b := Noise32(2, 1000, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}

	for i, v := range Noise32(0, 1000, 8) {
		if v != -1000 {
			t.Fatalf("zero seed sample %d = %d, want the absorbing -1000", i, v)
		}
	}
}

func TestConstant(t *testing.T) {
	d := Constant[int16](-7, 4)
	if len(d) != 4 {
		t.Fatalf("len = %d, want 4", len(d))
	}
	for i, v := range d {
		if v != -7 {
			t.Fatalf("Constant[%d] = %d, want -7", i, v)
		}
	}
}
