package buffer

import "testing"

func TestNewIsFreeAndEmpty(t *testing.T) {
	b := New(8)
	if b.Cap() != 8 || len(b.Samples()) != 8 {
		t.Fatalf("Cap() = %d, want 8", b.Cap())
	}
	if b.Count() != 0 || b.Full() {
		t.Fatalf("Count() = %d, want 0", b.Count())
	}
	if b.State() != StateFree {
		t.Fatalf("State() = %v, want free", b.State())
	}
}

func TestNewNegativeCapacity(t *testing.T) {
	if b := New(-1); b.Cap() != 0 {
		t.Fatalf("Cap() = %d, want 0 for negative input", b.Cap())
	}
}

func TestSetCountClamps(t *testing.T) {
	b := New(4)

	b.SetCount(10)
	if b.Count() != 4 || !b.Full() {
		t.Fatalf("Count() = %d, want 4", b.Count())
	}

	b.SetCount(-3)
	if b.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", b.Count())
	}

	b.SetCount(2)
	if len(b.Valid()) != 2 {
		t.Fatalf("len(Valid()) = %d, want 2", len(b.Valid()))
	}
}

func TestTransition(t *testing.T) {
	b := New(1)

	if !b.Transition(StateFree, StateAcquired) {
		t.Fatal("free -> acquired refused")
	}
	if b.Transition(StateFree, StateAcquired) {
		t.Fatal("second free -> acquired accepted")
	}
	if b.Transition(StateReleased, StateInFlight) {
		t.Fatal("transition from wrong state accepted")
	}
	if b.State() != StateAcquired {
		t.Fatalf("State() = %v, want acquired", b.State())
	}
}

func TestStateString(t *testing.T) {
	want := map[State]string{
		StateFree:     "free",
		StateAcquired: "acquired",
		StateReleased: "released",
		StateInFlight: "in-flight",
		State(9):      "State(9)",
	}
	for s, w := range want {
		if s.String() != w {
			t.Fatalf("String() = %q, want %q", s.String(), w)
		}
	}
}

func TestPutLE(t *testing.T) {
	b := New(3)
	copy(b.Samples(), []int16{1, -2, 0x1234})
	b.SetCount(3)

	dst := make([]byte, 4)
	if n := b.PutLE(dst, 0); n != 2 {
		t.Fatalf("PutLE wrote %d samples, want 2", n)
	}
	want := []byte{0x01, 0x00, 0xFE, 0xFF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}

	if n := b.PutLE(dst, 2); n != 1 || dst[0] != 0x34 || dst[1] != 0x12 {
		t.Fatalf("PutLE tail = %d, % x", n, dst[:2])
	}
	if n := b.PutLE(dst, 3); n != 0 {
		t.Fatalf("PutLE past count wrote %d", n)
	}
}

func TestSeq(t *testing.T) {
	b := New(1)
	b.SetSeq(42)
	if b.Seq() != 42 {
		t.Fatalf("Seq() = %d, want 42", b.Seq())
	}
}
