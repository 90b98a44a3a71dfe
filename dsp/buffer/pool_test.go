package buffer

import "testing"

func TestNewPool(t *testing.T) {
	p, err := NewPool(3, 512)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 || p.Capacity() != 512 {
		t.Fatalf("Len() = %d, Capacity() = %d", p.Len(), p.Capacity())
	}
	for i, b := range p.Buffers() {
		if b.Cap() != 512 {
			t.Fatalf("buffer %d cap = %d", i, b.Cap())
		}
	}
	if p.CountIn(StateFree) != 3 {
		t.Fatalf("CountIn(free) = %d, want 3", p.CountIn(StateFree))
	}

	p.Buffers()[0].Transition(StateFree, StateAcquired)
	if p.CountIn(StateAcquired) != 1 || p.CountIn(StateFree) != 2 {
		t.Fatal("CountIn does not track transitions")
	}
}

func TestNewPoolErrors(t *testing.T) {
	if _, err := NewPool(0, 512); err == nil {
		t.Fatal("expected error for zero count")
	}
	if _, err := NewPool(3, 0); err == nil {
		t.Fatal("expected error for zero capacity")
	}
}
